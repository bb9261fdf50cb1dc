package explore

import (
	"reflect"
	"testing"
)

func TestSearchEmptyQuery(t *testing.T) {
	ix := mustBuildIndex(t, testSnapshot())

	for _, query := range []string{"", "   ", ",.;"} {
		results, err := ix.NewSearch().WithQuery(query).Execute()
		if err != nil {
			t.Errorf("Execute(%q) error = %v", query, err)
		}
		if len(results) != 0 {
			t.Errorf("Execute(%q) = %v, want empty", query, results)
		}
	}
}

// The end-to-end scenario: query "bruch nenner" must rank document 2 (full
// token coverage) above document 1 (one token, higher frequency) and must
// not return document 3 at all.
func TestSearchRanking(t *testing.T) {
	ix := mustBuildIndex(t, testSnapshot())

	results, err := ix.NewSearch().WithQuery("bruch nenner").Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].ID != 2 || results[1].ID != 1 {
		t.Errorf("ranking order = [%d %d], want [2 1]", results[0].ID, results[1].ID)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("ranking not sorted descending at %d", i)
		}
	}
	for _, r := range results {
		if r.Explain == "" {
			t.Errorf("result %d has no explanation", r.ID)
		}
	}
}

func TestSearchIdempotent(t *testing.T) {
	ix := mustBuildIndex(t, testSnapshot())

	first, err := ix.NewSearch().WithQuery("bruch nenner").Execute()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := ix.NewSearch().WithQuery("bruch nenner").Execute()
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("rank not idempotent: %v vs %v", first, again)
		}
	}
}

// Every returned document must have matched at least ceil(tokenCount/2)
// query tokens.
func TestSearchHonorsMinMatchCount(t *testing.T) {
	ix := mustBuildIndex(t, testSnapshot())
	query := "bruch nenner winkel"
	tokens := queryTokens(query)

	results, err := ix.NewSearch().WithQuery(query).Execute()
	if err != nil {
		t.Fatal(err)
	}

	counts := ix.collectCandidates(tokens)
	minCount := minMatchCount(len(tokens))
	for _, r := range results {
		if counts[r.ID] < minCount {
			t.Errorf("document %d returned with match count %d < %d",
				r.ID, counts[r.ID], minCount)
		}
	}
}

func TestSearchWithFacet(t *testing.T) {
	ix := mustBuildIndex(t, testSnapshot())

	results, err := ix.NewSearch().
		WithQuery("bruch nenner").
		WithFacet("age", "7-8").
		Execute()
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].ID != 2 {
		t.Errorf("facet-narrowed ranking = %v, want only document 2", results)
	}

	// A selection matching nothing in the candidate set empties the ranking.
	results, err = ix.NewSearch().
		WithQuery("bruch nenner").
		WithFacet("age", "9-10").
		Execute()
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("got %v, want empty ranking", results)
	}

	// Several values of one field are alternatives.
	results, err = ix.NewSearch().
		WithQuery("bruch nenner").
		WithFacet("age", "5-6", "7-8").
		Execute()
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}

func TestSearchWithK(t *testing.T) {
	ix := mustBuildIndex(t, testSnapshot())

	results, err := ix.NewSearch().WithQuery("bruch nenner").WithK(1).Execute()
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].ID != 2 {
		t.Errorf("WithK(1) = %v, want the top result only", results)
	}

	results, err = ix.NewSearch().WithQuery("bruch nenner").WithK(0).Execute()
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Errorf("WithK(0) returned %d results, want all 2", len(results))
	}
}
