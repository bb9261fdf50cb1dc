package explore

import (
	"sync/atomic"
)

// Engine is the session facade the UI layer talks to.
//
// It holds the index behind an atomic pointer: the one-time load may run on
// a separate goroutine, and until it completes every query operation is a
// no-op returning empty results. "Index not ready" is a state the caller
// renders as a loading affordance, never an error. Rankings and suggestion
// lists are ephemeral and recomputed on every call; the only cross-query
// state, the active facet selection, is caller-owned input.
type Engine struct {
	idx atomic.Pointer[ExerciseIndex]
}

// NewEngine returns an engine with no index loaded.
func NewEngine() *Engine {
	return &Engine{}
}

// SetIndex installs a built index, flipping the engine to ready.
func (e *Engine) SetIndex(ix *ExerciseIndex) {
	e.idx.Store(ix)
}

// Index returns the installed index, or nil before the load completed.
func (e *Engine) Index() *ExerciseIndex {
	return e.idx.Load()
}

// Ready reports whether an index has been installed.
func (e *Engine) Ready() bool {
	return e.idx.Load() != nil
}

// Rank evaluates a query against the index and returns the full ranking,
// sorted by score descending. The selection narrows results to documents
// carrying at least one selected value per facet field; a nil or empty
// selection ranks everything. Deterministic: identical inputs yield
// identical orderings.
func (e *Engine) Rank(query string, selection map[string][]string) []RankedResult {
	ix := e.idx.Load()
	if ix == nil {
		return nil
	}
	search := ix.NewSearch().WithQuery(query)
	for field, values := range selection {
		search = search.WithFacet(field, values...)
	}
	results, err := search.Execute()
	if err != nil {
		// The builder is fully configured here; Execute cannot fail.
		panic(err)
	}
	return results
}

// Suggest proposes up to five completed query strings for a partial input.
// Empty before the index is loaded.
func (e *Engine) Suggest(partial string) []string {
	ix := e.idx.Load()
	if ix == nil {
		return nil
	}
	return ix.Suggest(partial)
}

// FacetCounts computes the facet-value distribution of a ranking, for
// building filter affordances. Empty before the index is loaded.
func (e *Engine) FacetCounts(results []RankedResult, field string) map[string]int {
	ix := e.idx.Load()
	if ix == nil {
		return nil
	}
	ids := make([]uint32, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ix.FacetCounts(ids, field)
}
