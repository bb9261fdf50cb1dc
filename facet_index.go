package explore

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// facetIndex provides fast facet filtering and counting using roaring
// bitmaps.
//
// Facet tags are categorical: each "field:value" pair maps to the bitmap of
// document ids carrying that tag. Filtering a ranking down to a facet
// selection is a union over the selected value bitmaps, and live facet
// counts are an AND plus cardinality per value. Both operate in microseconds
// even for large indexes, which keeps facet recomputation on every keystroke
// cheap.
//
// The index is populated during BuildIndex and read-only afterwards.
type facetIndex struct {
	// "field:value" -> bitmap of doc IDs
	categorical map[string]*roaring.Bitmap
	// field -> sorted distinct values
	fields map[string][]string
}

func newFacetIndex() *facetIndex {
	return &facetIndex{
		categorical: make(map[string]*roaring.Bitmap),
		fields:      make(map[string][]string),
	}
}

// facetKey builds the categorical lookup key for a field/value pair.
func facetKey(field, value string) string {
	return field + ":" + value
}

// add tags a document with the given facet values. Build-time only.
func (f *facetIndex) add(id uint32, field string, values []string) {
	for _, v := range values {
		key := facetKey(field, v)
		bm := f.categorical[key]
		if bm == nil {
			bm = roaring.New()
			f.categorical[key] = bm
			f.fields[field] = append(f.fields[field], v)
		}
		bm.Add(id)
	}
}

// seal sorts the per-field value lists for deterministic iteration.
// Called once at the end of BuildIndex.
func (f *facetIndex) seal() {
	for _, values := range f.fields {
		sort.Strings(values)
	}
}

// values returns the sorted distinct values of a field.
func (f *facetIndex) values(field string) []string {
	return f.fields[field]
}

// eligible returns the bitmap of documents carrying at least one of the
// given values of the field. An unknown value contributes nothing. The
// returned bitmap is owned by the caller.
func (f *facetIndex) eligible(field string, values []string) *roaring.Bitmap {
	out := roaring.New()
	for _, v := range values {
		if bm := f.categorical[facetKey(field, v)]; bm != nil {
			out.Or(bm)
		}
	}
	return out
}

// counts returns, for every value of the field, how many of the visible
// documents carry it. Values with zero hits are omitted.
func (f *facetIndex) counts(field string, visible *roaring.Bitmap) map[string]int {
	out := make(map[string]int)
	for _, v := range f.fields[field] {
		bm := f.categorical[facetKey(field, v)]
		if bm == nil {
			continue
		}
		if n := roaring.And(bm, visible).GetCardinality(); n > 0 {
			out[v] = int(n)
		}
	}
	return out
}

// facetFilter restricts candidate documents to an active facet selection
// during search. A nil filter admits every document.
type facetFilter struct {
	bitmap *roaring.Bitmap
}

// newFacetFilter intersects the per-field eligible sets of a selection.
// Within one field the selected values are OR-ed (a document needs any of
// them); across fields the sets are AND-ed. An empty selection returns nil,
// meaning no filtering.
func newFacetFilter(f *facetIndex, selection map[string][]string) *facetFilter {
	var bm *roaring.Bitmap
	for field, values := range selection {
		if len(values) == 0 {
			continue
		}
		set := f.eligible(field, values)
		if bm == nil {
			bm = set
		} else {
			bm.And(set)
		}
	}
	if bm == nil {
		return nil
	}
	return &facetFilter{bitmap: bm}
}

// isEligible checks whether a document passes the active selection.
func (f *facetFilter) isEligible(id uint32) bool {
	if f == nil {
		return true
	}
	return f.bitmap.Contains(id)
}
