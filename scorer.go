package explore

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Ranking constants. These are empirically tuned against the production
// exercise corpus; changing any of them changes result ordering, so keep
// them stable.
const (
	// termFrequencyCap blunts keyword stuffing: occurrences beyond this
	// count contribute nothing extra.
	termFrequencyCap = 6

	// minDocLength is the floor applied to document lengths before the
	// field-length normalisation; shorter documents are treated as if they
	// had this many tokens.
	minDocLength = 40

	// maxLengthNorm bounds the field-length down-weighting: the factor
	// never drops below 1/maxLengthNorm regardless of document length.
	maxLengthNorm = 60

	// missingSolutionPenalty down-ranks exercises without a worked
	// solution. They stay in the ranking, just lower.
	missingSolutionPenalty = 0.45

	// unlinkedEntityPenalty down-ranks exercises with zero cross-references,
	// a weak curation signal.
	unlinkedEntityPenalty = 0.45

	// taxonomyMissFactor applies when no query token hits the document's
	// taxonomy path; an exact subject-path hit keeps the full weight.
	taxonomyMissFactor = 0.75

	// recencyWeight scales the logarithmic id-based recency boost.
	recencyWeight = 0.01
)

// scoreDocument computes the ranking score and its explanation for one
// candidate document.
//
// Per query token present in the document, tf·idf is accumulated:
//
//	tf  = sqrt(min(termFrequency, termFrequencyCap))
//	idf = ln(numDocs / (documentFrequency + 1)) + 1
//
// The raw sum is combined with the coordination factor (fraction of query
// tokens that matched) and a saturating field-length normalisation, then the
// recency boost is added and the curation penalties and taxonomy boost are
// applied multiplicatively:
//
//	score = (coord·raw·fieldLength + ln(id)·0.01) · sol · lnks · tax
//
// The query must be non-empty; empty queries are rejected upstream by the
// candidate collector.
func (ix *ExerciseIndex) scoreDocument(id uint32, tokens []string) (float64, string) {
	doc := ix.mustDocument(id)

	var raw float64
	occurCount := 0
	var parts strings.Builder
	for _, w := range tokens {
		freq, ok := ix.tf[w][id]
		if !ok {
			continue
		}
		occurCount++
		tf := math.Sqrt(math.Min(float64(freq), termFrequencyCap))
		idf := math.Log(float64(ix.numDocs)/float64(ix.docFreq[w]+1)) + 1
		raw += tf * idf
		fmt.Fprintf(&parts, "[%s tf:%s idf:%s] ", w, round2(tf), round2(idf))
	}

	fieldLength := math.Max(1/math.Sqrt(math.Max(minDocLength, float64(doc.DocLength))), 1.0/maxLengthNorm)
	coord := float64(occurCount) / float64(len(tokens))
	weight := coord * raw * fieldLength

	penaltyFactor1 := 1.0
	if doc.SolutionMissing {
		penaltyFactor1 = missingSolutionPenalty
	}
	penaltyFactor2 := 1.0
	if doc.LinkedEntities == 0 {
		penaltyFactor2 = unlinkedEntityPenalty
	}

	recencyValue := math.Log(float64(id)) * recencyWeight

	taxBoost := taxonomyMissFactor
	for _, w := range tokens {
		if doc.InTaxonomy(w) {
			taxBoost = 1
			break
		}
	}

	score := (weight + recencyValue) * penaltyFactor1 * penaltyFactor2 * taxBoost

	explain := fmt.Sprintf("Score: %s, sol: %s, lnks: %s, rec: %s, tax: %s, %s* fl:%s * coord:%s",
		round2(score), round2(penaltyFactor1), round2(penaltyFactor2),
		round2(recencyValue), round2(taxBoost),
		parts.String(), round2(fieldLength), round2(coord))

	return score, explain
}

// round2 rounds to 2 decimal places and formats without trailing zeros,
// for the explanation string.
func round2(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
