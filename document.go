package explore

// Document holds the per-exercise metadata consumed by the scorer and the
// facet tables. Documents are immutable once the index is built.
//
// The integer ID doubles as a recency proxy: ids are assigned by the external
// content pipeline in creation order, so a larger id means a more recent
// exercise.
type Document struct {
	// ID is the document identifier. Must be positive; the recency boost
	// takes its logarithm.
	ID uint32

	// DocLength is the token count of the exercise body, used for
	// field-length normalisation.
	DocLength int

	// SolutionMissing reports whether the exercise lacks a worked solution.
	SolutionMissing bool

	// LinkedEntities is the number of cross-references to other entities.
	// Zero is treated as a weak curation signal by the scorer.
	LinkedEntities int

	// Taxonomy is the set of tokens describing subject-path membership.
	// An exact hit of a query token against this set earns a boost.
	Taxonomy []string

	// Age holds the age-band facet tags, e.g. "5-6". A document may carry
	// several tags and is counted once per tag it holds.
	Age []string
}

// InTaxonomy reports whether the given token appears literally in the
// document's taxonomy path.
func (d *Document) InTaxonomy(token string) bool {
	for _, t := range d.Taxonomy {
		if t == token {
			return true
		}
	}
	return false
}

// RankedResult is a single entry of a ranking: the document id, its score
// and a diagnostic explanation of how the score was assembled.
//
// Explain is a transparency artifact only; it never influences ordering or
// filtering.
type RankedResult struct {
	ID      uint32
	Score   float64
	Explain string
}
