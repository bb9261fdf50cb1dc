/*
Package explore provides an in-memory discovery and ranking engine for
exercise documents.

The engine works on a pre-built, immutable inverted index: free-text queries
are matched against posting lists, candidates are scored with a TF-IDF style
formula extended by heuristic penalty and boost factors, and the ranking is
returned together with a human-readable score explanation per document.
Facet tables computed over the same index power live "N remaining results"
counts for filter UIs, and a co-occurrence driven suggestion engine produces
phrase-aware autocomplete entries for partial queries.

# Overview

The package is organised around a small number of collaborating pieces:

  - ExerciseIndex: the immutable index (posting lists, term frequencies,
    document metadata, facet tables, autocomplete tables). Built once per
    session from a Snapshot and never mutated by query processing.
  - Search: a fluent builder over the index that collects candidates,
    applies facet selections, scores and sorts.
  - Suggest: phrase-aware autocomplete over the index's token co-occurrence
    tables, ranked by edit distance to the typed input.
  - Throttle: a trailing-edge rate limiter for recomputing suggestions while
    the user types.
  - Engine: a session facade that holds the index behind an atomic pointer
    so queries issued before the index finished loading return empty results
    instead of failing.

# Quick Start

Load a snapshot, build the index and run a query:

	snap, err := explore.LoadSnapshotFile("exercise_index.json")
	if err != nil {
	    log.Fatal(err)
	}
	idx, err := explore.BuildIndex(snap)
	if err != nil {
	    log.Fatal(err)
	}

	results, err := idx.NewSearch().
	    WithQuery("bruch nenner").
	    WithK(10).
	    Execute()
	if err != nil {
	    log.Fatal(err)
	}
	for _, r := range results {
	    fmt.Printf("%d %.2f %s\n", r.ID, r.Score, r.Explain)
	}

# Scoring

For every query token present in a candidate document the scorer accumulates
tf·idf where tf is square-root compressed and capped, and idf carries a +1
floor so universally common tokens still contribute. The accumulated raw
score is combined with a coordination factor (fraction of query tokens
matched) and a saturating field-length normalisation, then a small recency
boost is added and curation penalties (missing worked solution, zero linked
entities) and a taxonomy-path boost are applied multiplicatively. The
constants are empirically tuned and intentionally kept bit-for-bit stable;
see scorer.go.

# Concurrency

A built ExerciseIndex is immutable and therefore safe for concurrent readers
without locking. Throttle is safe for concurrent use. Engine may be loaded
from a goroutine while queries run; readiness is observed through an atomic
pointer.
*/
package explore
