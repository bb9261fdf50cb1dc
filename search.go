package explore

import (
	"sort"
)

// Compile-time check to ensure exerciseSearch implements Search.
var _ Search = (*exerciseSearch)(nil)

// Search encapsulates the search context for the exercise index.
type Search interface {
	// WithQuery sets the raw query text
	WithQuery(query string) Search

	// WithFacet restricts results to documents carrying at least one of the
	// given values of the facet field; calls for different fields compose
	WithFacet(field string, values ...string) Search

	// WithK sets the number of results to return (0 or negative: all)
	WithK(k int) Search

	// WithCutoff sets the autocut parameter (-1 disables)
	WithCutoff(cutoff int) Search

	// Execute the search and return the ranking
	Execute() ([]RankedResult, error)
}

// exerciseSearch implements Search over an ExerciseIndex.
//
// Execution order: tokenize -> candidate collection -> facet filtering ->
// scoring -> sort descending -> k-limit/autocut. Scoring and collection are
// pure reads over the immutable index, so a builder can be executed from any
// goroutine.
type exerciseSearch struct {
	index     *ExerciseIndex
	query     string
	selection map[string][]string
	k         int
	cutoff    int
}

// NewSearch creates a new search builder for this index.
//
// Example:
//
//	results, err := idx.NewSearch().
//		WithQuery("bruch nenner").
//		WithFacet("age", "5-6").
//		WithK(10).
//		Execute()
func (ix *ExerciseIndex) NewSearch() Search {
	return &exerciseSearch{
		index:  ix,
		k:      0,  // default: full ranking, callers paginate
		cutoff: -1, // default: no autocut
	}
}

func (s *exerciseSearch) WithQuery(query string) Search {
	s.query = query
	return s
}

func (s *exerciseSearch) WithFacet(field string, values ...string) Search {
	if s.selection == nil {
		s.selection = make(map[string][]string)
	}
	s.selection[field] = append(s.selection[field], values...)
	return s
}

func (s *exerciseSearch) WithK(k int) Search {
	s.k = k
	return s
}

func (s *exerciseSearch) WithCutoff(cutoff int) Search {
	s.cutoff = cutoff
	return s
}

// Execute performs the search.
//
// An empty or all-separator query yields an empty ranking and a nil error;
// "no results" is a state, not a failure. The returned ranking is sorted by
// score descending with ties broken by ascending document id, so repeated
// executions of the same query return identical orderings.
func (s *exerciseSearch) Execute() ([]RankedResult, error) {
	tokens := queryTokens(s.query)
	if len(tokens) == 0 {
		return nil, nil
	}

	candidates := s.index.collectCandidates(tokens)
	if len(candidates) == 0 {
		return nil, nil
	}

	filter := newFacetFilter(s.index.facets, s.selection)

	results := make([]RankedResult, 0, len(candidates))
	for id := range candidates {
		if !filter.isEligible(id) {
			continue
		}
		score, explain := s.index.scoreDocument(id, tokens)
		results = append(results, RankedResult{
			ID:      id,
			Score:   score,
			Explain: explain,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	results = limitResults(results, s.k)
	results = autocutResults(results, s.cutoff)

	return results, nil
}
