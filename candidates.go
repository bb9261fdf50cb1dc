package explore

// collectCandidates finds the documents that plausibly match a tokenized
// query.
//
// Every token's posting list is walked and each document's match count is
// incremented. Documents matching fewer than half of the query tokens
// (rounded up) are presumptively irrelevant and excluded before scoring,
// which keeps scoring cost proportional to plausible matches only.
//
// An empty query yields an empty candidate set; there is no implicit
// "match everything". The returned map carries the match counts, with no
// ordering guarantee.
func (ix *ExerciseIndex) collectCandidates(tokens []string) map[uint32]int {
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[uint32]int)
	for _, t := range tokens {
		bm := ix.postings[t]
		if bm == nil {
			continue
		}
		for iter := bm.Iterator(); iter.HasNext(); {
			counts[iter.Next()]++
		}
	}

	minCount := minMatchCount(len(tokens))
	for id, n := range counts {
		if n < minCount {
			delete(counts, id)
		}
	}
	return counts
}

// minMatchCount returns ceil(tokenCount / 2), the minimum number of query
// token hits a document needs to stay a candidate.
func minMatchCount(tokenCount int) int {
	return (tokenCount + 1) / 2
}
