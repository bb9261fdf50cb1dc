package explore

// sanitizeK ensures k is within valid bounds [1, maxResults].
//
// If k is <= 0 or exceeds maxResults, it returns maxResults. This provides
// a consistent way to handle k values across search and suggestion code.
func sanitizeK(k, maxResults int) int {
	if k <= 0 || k > maxResults {
		return maxResults
	}
	return k
}

// limitResults applies k-limiting to a ranking.
func limitResults(results []RankedResult, k int) []RankedResult {
	k = sanitizeK(k, len(results))
	return results[:k]
}

// autocutResults applies the autocut algorithm to determine an optimal
// result cutoff based on the score distribution.
//
// Parameters:
//   - results: ranking to analyze, sorted by score
//   - cutoff: number of extrema to find before cutting (-1 disables autocut)
//
// Returns the sliced ranking up to the autocut point. If cutoff is -1,
// returns the ranking unchanged.
func autocutResults(results []RankedResult, cutoff int) []RankedResult {
	if cutoff == -1 || len(results) == 0 {
		return results
	}

	scores := make([]float64, len(results))
	for i, result := range results {
		scores[i] = result.Score
	}

	cutIndex := Autocut(scores, cutoff)

	return results[:cutIndex]
}

// Autocut determines the optimal cutoff point in a score distribution.
//
// It analyzes the normalized difference between actual scores and an ideal
// linear distribution to find local maxima (extrema). Returns the index
// before the Nth extremum where N is the cutOff parameter.
func Autocut(yValues []float64, cutOff int) int {
	if len(yValues) <= 1 {
		return len(yValues)
	}

	diff := make([]float64, len(yValues))
	step := 1. / (float64(len(yValues)) - 1.)

	for i := range yValues {
		xValue := 0. + float64(i)*step
		yValueNorm := (yValues[i] - yValues[0]) / (yValues[len(yValues)-1] - yValues[0])
		diff[i] = yValueNorm - xValue
	}

	extremaCount := 0
	for i := 1; i < len(diff); i++ {
		var extremum bool
		if i == len(diff)-1 { // for the last element there is no "next" point
			extremum = i >= 2 && diff[i] > diff[i-1] && diff[i] > diff[i-2]
		} else {
			extremum = diff[i] > diff[i-1] && diff[i] > diff[i+1]
		}
		if extremum {
			extremaCount++
			if extremaCount >= cutOff {
				return i
			}
		}
	}
	return len(yValues)
}
