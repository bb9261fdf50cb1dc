package explore

import (
	"testing"
)

func TestSanitizeK(t *testing.T) {
	tests := []struct {
		name       string
		k          int
		maxResults int
		want       int
	}{
		{
			name:       "k is zero",
			k:          0,
			maxResults: 10,
			want:       10,
		},
		{
			name:       "k is negative",
			k:          -5,
			maxResults: 10,
			want:       10,
		},
		{
			name:       "k exceeds maxResults",
			k:          100,
			maxResults: 10,
			want:       10,
		},
		{
			name:       "k is within bounds",
			k:          5,
			maxResults: 10,
			want:       5,
		},
		{
			name:       "k equals maxResults",
			k:          10,
			maxResults: 10,
			want:       10,
		},
		{
			name:       "maxResults is zero",
			k:          5,
			maxResults: 0,
			want:       0,
		},
		{
			name:       "both zero",
			k:          0,
			maxResults: 0,
			want:       0,
		},
		{
			name:       "k is 1",
			k:          1,
			maxResults: 10,
			want:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeK(tt.k, tt.maxResults)
			if got != tt.want {
				t.Errorf("sanitizeK(%d, %d) = %d, want %d",
					tt.k, tt.maxResults, got, tt.want)
			}
		})
	}
}

func TestLimitResults(t *testing.T) {
	createResults := func(count int) []RankedResult {
		results := make([]RankedResult, count)
		for i := 0; i < count; i++ {
			results[i] = RankedResult{
				ID:    uint32(i + 1),
				Score: float64(count - i),
			}
		}
		return results
	}

	tests := []struct {
		name        string
		resultsSize int
		k           int
		wantSize    int
	}{
		{
			name:        "k is zero - returns all",
			resultsSize: 10,
			k:           0,
			wantSize:    10,
		},
		{
			name:        "k is negative - returns all",
			resultsSize: 10,
			k:           -5,
			wantSize:    10,
		},
		{
			name:        "k exceeds results - returns all",
			resultsSize: 5,
			k:           10,
			wantSize:    5,
		},
		{
			name:        "k within bounds - returns k",
			resultsSize: 10,
			k:           5,
			wantSize:    5,
		},
		{
			name:        "k equals results size",
			resultsSize: 10,
			k:           10,
			wantSize:    10,
		},
		{
			name:        "empty results",
			resultsSize: 0,
			k:           5,
			wantSize:    0,
		},
		{
			name:        "k is 1",
			resultsSize: 10,
			k:           1,
			wantSize:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := createResults(tt.resultsSize)
			got := limitResults(results, tt.k)

			if len(got) != tt.wantSize {
				t.Errorf("limitResults() returned %d results, want %d",
					len(got), tt.wantSize)
			}

			// Verify that the returned results are the first k elements
			for i := 0; i < len(got); i++ {
				if got[i].ID != uint32(i+1) {
					t.Errorf("limitResults()[%d].ID = %d, want %d",
						i, got[i].ID, uint32(i+1))
				}
			}
		})
	}
}

func TestAutocut(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float64
		cutoff   int
		expected int
	}{
		{
			name:     "empty slice",
			scores:   []float64{},
			cutoff:   1,
			expected: 0,
		},
		{
			name:     "single element",
			scores:   []float64{0.5},
			cutoff:   1,
			expected: 1,
		},
		{
			name:     "two elements",
			scores:   []float64{0.9, 0.4},
			cutoff:   1,
			expected: 2,
		},
		{
			name:     "clear gap after top cluster",
			scores:   []float64{1.0, 0.9, 0.8, 0.2, 0.1},
			cutoff:   1,
			expected: 3, // extremum where the distribution drops away
		},
		{
			name:     "gap at the tail",
			scores:   []float64{1.0, 0.9, 0.8, 0.1},
			cutoff:   1,
			expected: 3, // last point is the extremum
		},
		{
			name:     "cutoff 2 - second extremum",
			scores:   []float64{1.0, 0.9, 0.8, 0.4, 0.35, 0.3, 0.1, 0.05},
			cutoff:   2,
			expected: 6,
		},
		{
			name:     "cutoff 1 on the same distribution",
			scores:   []float64{1.0, 0.9, 0.8, 0.4, 0.35, 0.3, 0.1, 0.05},
			cutoff:   1,
			expected: 3,
		},
		{
			name:     "cutoff higher than extrema count",
			scores:   []float64{1.0, 0.9, 0.8, 0.2, 0.1},
			cutoff:   5,
			expected: 5, // returns all when not enough extrema
		},
		{
			name:     "all same values",
			scores:   []float64{0.5, 0.5, 0.5, 0.5, 0.5},
			cutoff:   1,
			expected: 5, // no extrema in a flat distribution
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Autocut(tt.scores, tt.cutoff)
			if got != tt.expected {
				t.Errorf("Autocut() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestAutocutResults(t *testing.T) {
	createResults := func(scores []float64) []RankedResult {
		results := make([]RankedResult, len(scores))
		for i, score := range scores {
			results[i] = RankedResult{ID: uint32(i + 1), Score: score}
		}
		return results
	}

	tests := []struct {
		name         string
		scores       []float64
		cutoff       int
		expectedSize int
	}{
		{
			name:         "cutoff -1 returns all (no-op)",
			scores:       []float64{1.0, 0.9, 0.8, 0.2, 0.1},
			cutoff:       -1,
			expectedSize: 5,
		},
		{
			name:         "empty results with cutoff -1",
			scores:       []float64{},
			cutoff:       -1,
			expectedSize: 0,
		},
		{
			name:         "empty results with cutoff 1",
			scores:       []float64{},
			cutoff:       1,
			expectedSize: 0,
		},
		{
			name:         "cutoff 1 trims past the gap",
			scores:       []float64{1.0, 0.9, 0.8, 0.2, 0.1},
			cutoff:       1,
			expectedSize: 3,
		},
		{
			name:         "single result",
			scores:       []float64{0.5},
			cutoff:       1,
			expectedSize: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := createResults(tt.scores)
			got := autocutResults(results, tt.cutoff)

			if len(got) != tt.expectedSize {
				t.Errorf("autocutResults() returned %d results, want %d",
					len(got), tt.expectedSize)
			}

			// Verify that results are preserved in order
			for i := 0; i < len(got); i++ {
				if got[i].ID != uint32(i+1) {
					t.Errorf("autocutResults()[%d].ID = %d, want %d",
						i, got[i].ID, uint32(i+1))
				}
				if got[i].Score != tt.scores[i] {
					t.Errorf("autocutResults()[%d].Score = %f, want %f",
						i, got[i].Score, tt.scores[i])
				}
			}
		})
	}
}
