package explore

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestions caps the number of autocomplete entries returned.
const maxSuggestions = 5

// suggestStopwords are generic connector words never proposed as phrase
// continuations.
var suggestStopwords = []string{"zu", "zur", "zum", "und", "aufgaben"}

// Suggest proposes completed query strings for a partial, in-progress input.
//
// The algorithm runs in two stages so suggestions stay grounded in documents
// that could plausibly be reached:
//
//  1. Exact-match narrowing: every completed word of the input (all chunks
//     but the last) must appear exactly in a candidate document; the
//     candidate set is intersected down accordingly.
//  2. Substring expansion: every indexed token containing the in-progress
//     chunk as a substring and occurring in a still-candidate document
//     becomes an extension. If a single token qualifies, or the chunk is
//     itself a complete indexed token, that token is treated as confirmed
//     and the co-occurring tokens of the remaining candidate documents are
//     proposed as two-word phrase extensions, giving phrase completions
//     without a dedicated phrase index.
//
// Full suggestion strings (completed words plus extension) are ranked by
// Levenshtein distance to the lowercased input, ties broken lexicographically,
// and at most five are returned.
//
// A trailing separator means there is no in-progress chunk to expand, so the
// result is empty, as it is when the narrowing stage eliminates every
// document.
func (ix *ExerciseIndex) Suggest(partial string) []string {
	input := strings.ToLower(partial)

	chunks, open := splitChunks(normalize(partial))
	if len(chunks) == 0 || !open {
		return nil
	}
	frontToken := chunks[len(chunks)-1]
	fixedTokens := chunks[:len(chunks)-1]

	// Stage 1: exact-match narrowing on the completed words.
	docs := ix.acAll.Clone()
	for _, t := range fixedTokens {
		bm := ix.acTokens[t]
		if bm == nil {
			return nil
		}
		docs.And(bm)
		if docs.IsEmpty() {
			return nil
		}
	}

	// Stage 2: substring expansion on the in-progress word. The token list
	// is sorted at build time, so iteration is deterministic.
	var relevantTokens []string
	for _, t := range ix.acTokenList {
		if !strings.Contains(t, frontToken) || containsToken(fixedTokens, t) {
			continue
		}
		if bm := ix.acTokens[t]; bm != nil && bm.Intersects(docs) {
			relevantTokens = append(relevantTokens, t)
		}
	}

	// Phrase extension once the front token is confirmed.
	var relTok string
	if len(relevantTokens) == 1 {
		relTok = relevantTokens[0]
	} else if containsToken(relevantTokens, frontToken) {
		relTok = frontToken
	}
	if relTok != "" {
		if bm := ix.acTokens[relTok]; bm != nil {
			docs.And(bm)
		}
		seen := make(map[string]bool, len(relevantTokens))
		for _, t := range relevantTokens {
			seen[t] = true
		}
		for iter := docs.Iterator(); iter.HasNext(); {
			id := iter.Next()
			for _, token := range ix.acDocs[id] {
				if token == relTok || containsToken(fixedTokens, token) || isStopword(token) {
					continue
				}
				phrase := relTok + " " + token
				if !seen[phrase] {
					seen[phrase] = true
					relevantTokens = append(relevantTokens, phrase)
				}
			}
		}
	}

	if len(relevantTokens) == 0 {
		return nil
	}

	// Build full suggestion strings and rank by edit distance to the input.
	type entry struct {
		val      string
		distance int
	}
	entries := make([]entry, 0, len(relevantTokens))
	for _, ext := range relevantTokens {
		parts := make([]string, 0, len(fixedTokens)+1)
		parts = append(parts, fixedTokens...)
		parts = append(parts, ext)
		val := strings.Join(parts, " ")
		entries = append(entries, entry{
			val:      val,
			distance: levenshtein.ComputeDistance(val, input),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].distance != entries[j].distance {
			return entries[i].distance < entries[j].distance
		}
		return entries[i].val < entries[j].val
	})

	n := sanitizeK(maxSuggestions, len(entries))
	out := make([]string, n)
	for i := range out {
		out[i] = entries[i].val
	}
	return out
}

func containsToken(tokens []string, t string) bool {
	for _, x := range tokens {
		if x == t {
			return true
		}
	}
	return false
}

func isStopword(t string) bool {
	return containsToken(suggestStopwords, t)
}
