package explore

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is the wire form of a pre-built index as produced by the external
// ingestion pipeline. Two encodings are supported: JSON (the pipeline's
// native artifact format) and MessagePack (a compact binary form for
// bundled or cached snapshots).
type Snapshot struct {
	// Tokens maps each token to its posting list: document id -> term
	// frequency within that document.
	Tokens map[string]map[uint32]int `json:"tokens" msgpack:"tokens"`

	// Payloads carries the per-document metadata.
	Payloads map[uint32]Payload `json:"payloads" msgpack:"payloads"`

	// Autocomplete holds the tables driving phrase-aware suggestions.
	Autocomplete AutocompleteSnapshot `json:"autocomplete" msgpack:"autocomplete"`
}

// Payload is the per-document metadata record of a Snapshot.
type Payload struct {
	DocLength       int      `json:"docLength" msgpack:"docLength"`
	SolutionMissing bool     `json:"solutionMissing" msgpack:"solutionMissing"`
	LinkedEntities  int      `json:"linkedEntities" msgpack:"linkedEntities"`
	Taxonomy        []string `json:"taxonomy" msgpack:"taxonomy"`
	Age             []string `json:"age" msgpack:"age"`
}

// AutocompleteSnapshot carries the token <-> document co-occurrence tables.
type AutocompleteSnapshot struct {
	// Tokens maps each token to the ids of documents containing it.
	Tokens map[string][]uint32 `json:"tokens" msgpack:"tokens"`

	// Docs maps each document id to its distinct tokens.
	Docs map[uint32][]string `json:"docs" msgpack:"docs"`
}

// LoadSnapshot decodes a JSON snapshot from r.
func LoadSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode JSON snapshot: %w", err)
	}
	return &snap, nil
}

// LoadSnapshotMsgpack decodes a MessagePack snapshot from r.
func LoadSnapshotMsgpack(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode msgpack snapshot: %w", err)
	}
	return &snap, nil
}

// LoadSnapshotFile loads a snapshot from disk, choosing the codec by file
// extension: .json for JSON, .bin or .msgpack for MessagePack.
func LoadSnapshotFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return LoadSnapshot(f)
	case ".bin", ".msgpack":
		return LoadSnapshotMsgpack(f)
	default:
		return nil, fmt.Errorf("unknown snapshot extension %q (want .json, .bin or .msgpack)", ext)
	}
}

// BuildIndex constructs the immutable ExerciseIndex from a snapshot.
//
// The snapshot is validated against the index invariants before any table
// is handed to query code: every document id referenced by a posting list
// or an autocomplete table must have metadata, document ids must be
// positive (the recency boost takes a logarithm), and term frequencies must
// be positive. A violation means the external pipeline produced a corrupt
// artifact; the build fails loudly rather than defaulting.
//
// The returned index does not alias the snapshot's mutable state, so the
// snapshot may be discarded after the build.
func BuildIndex(snap *Snapshot) (*ExerciseIndex, error) {
	ix := &ExerciseIndex{
		postings: make(map[string]*roaring.Bitmap, len(snap.Tokens)),
		tf:       make(map[string]map[uint32]int, len(snap.Tokens)),
		docFreq:  make(map[string]int, len(snap.Tokens)),
		docs:     make(map[uint32]*Document, len(snap.Payloads)),
		numDocs:  len(snap.Payloads),
		facets:   newFacetIndex(),
		acTokens: make(map[string]*roaring.Bitmap, len(snap.Autocomplete.Tokens)),
		acDocs:   make(map[uint32][]string, len(snap.Autocomplete.Docs)),
		acAll:    roaring.New(),
	}

	for id, p := range snap.Payloads {
		if id == 0 {
			return nil, fmt.Errorf("document id must be positive")
		}
		doc := &Document{
			ID:              id,
			DocLength:       p.DocLength,
			SolutionMissing: p.SolutionMissing,
			LinkedEntities:  p.LinkedEntities,
			Taxonomy:        append([]string(nil), p.Taxonomy...),
			Age:             append([]string(nil), p.Age...),
		}
		ix.docs[id] = doc
		ix.facets.add(id, "age", doc.Age)
	}
	ix.facets.seal()

	for token, posting := range snap.Tokens {
		bm := roaring.New()
		tfMap := make(map[uint32]int, len(posting))
		for id, freq := range posting {
			if _, ok := ix.docs[id]; !ok {
				return nil, fmt.Errorf("posting list for %q references unknown document %d", token, id)
			}
			if freq <= 0 {
				return nil, fmt.Errorf("posting list for %q has non-positive term frequency for document %d", token, id)
			}
			bm.Add(id)
			tfMap[id] = freq
		}
		ix.postings[token] = bm
		ix.tf[token] = tfMap
		// document frequency, derived once for IDF computation
		ix.docFreq[token] = int(bm.GetCardinality())
	}

	for token, ids := range snap.Autocomplete.Tokens {
		bm := roaring.New()
		for _, id := range ids {
			if _, ok := ix.docs[id]; !ok {
				return nil, fmt.Errorf("autocomplete token %q references unknown document %d", token, id)
			}
			bm.Add(id)
		}
		ix.acTokens[token] = bm
	}

	ix.acTokenList = make([]string, 0, len(ix.acTokens))
	for token := range ix.acTokens {
		ix.acTokenList = append(ix.acTokenList, token)
	}
	sort.Strings(ix.acTokenList)

	for id, tokens := range snap.Autocomplete.Docs {
		if _, ok := ix.docs[id]; !ok {
			return nil, fmt.Errorf("autocomplete table references unknown document %d", id)
		}
		sorted := append([]string(nil), tokens...)
		sort.Strings(sorted)
		ix.acDocs[id] = sorted
		ix.acAll.Add(id)
	}

	return ix, nil
}
