package explore

import (
	"github.com/RoaringBitmap/roaring"
)

// ExerciseIndex is the immutable in-memory index the engine queries.
//
// It combines four read-only tables built once from a Snapshot:
//
//  1. Posting lists: token -> bitmap of document ids, with per-document term
//     frequencies kept alongside. Roaring bitmaps keep the id sets compact
//     and make candidate collection and facet intersection cheap.
//  2. Document frequencies: token -> number of distinct documents containing
//     it, derived from the posting lists at build time for IDF computation.
//  3. Document metadata: id -> Document, consumed by the scorer.
//  4. Autocomplete tables: token -> document bitmap and document -> sorted
//     distinct token list, used to expand an in-progress token into
//     co-occurring two-word phrases.
//
// No method mutates the index after BuildIndex returns, so all methods are
// safe for concurrent use without locking.
type ExerciseIndex struct {
	// inverted index: token -> docIDs
	postings map[string]*roaring.Bitmap
	// term frequencies: token -> docID -> tf
	tf map[string]map[uint32]int
	// token -> number of distinct documents containing it
	docFreq map[string]int
	// docID -> metadata
	docs map[uint32]*Document
	// total number of documents
	numDocs int

	// facet tables: "field:value" bitmaps over document ids
	facets *facetIndex

	// autocomplete: token -> docIDs
	acTokens map[string]*roaring.Bitmap
	// autocomplete: docID -> sorted distinct tokens
	acDocs map[uint32][]string
	// sorted list of all autocomplete tokens, for deterministic iteration
	acTokenList []string
	// every document id present in the autocomplete tables
	acAll *roaring.Bitmap
}

// NumDocs returns the total number of indexed documents.
func (ix *ExerciseIndex) NumDocs() int {
	return ix.numDocs
}

// Document returns the metadata for the given id.
func (ix *ExerciseIndex) Document(id uint32) (*Document, bool) {
	d, ok := ix.docs[id]
	return d, ok
}

// DocumentFrequency returns the number of distinct documents containing the
// token. Zero for tokens not in the index.
func (ix *ExerciseIndex) DocumentFrequency(token string) int {
	return ix.docFreq[token]
}

// FacetValues returns the sorted distinct values observed for a facet field
// across the whole index.
func (ix *ExerciseIndex) FacetValues(field string) []string {
	return ix.facets.values(field)
}

// FacetCounts computes, for the given result ids, how many of them carry
// each value of the facet field. A document holding several values is
// counted once per value. Values with no hits are omitted, so the caller
// can suppress the facet from display when the map has at most one entry.
func (ix *ExerciseIndex) FacetCounts(ids []uint32, field string) map[string]int {
	visible := roaring.New()
	visible.AddMany(ids)
	return ix.facets.counts(field, visible)
}

// mustDocument returns the metadata for an id taken from a posting list.
// A posting list id without metadata violates the index build invariant and
// indicates a corrupted build, so it panics instead of defaulting.
func (ix *ExerciseIndex) mustDocument(id uint32) *Document {
	d, ok := ix.docs[id]
	if !ok {
		panic("explore: posting list references unknown document id")
	}
	return d
}
