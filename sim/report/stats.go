package report

import (
	"math"
	"slices"
)

// WaitStats summarizes the waits of the patients seen, in weeks.
type WaitStats struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	P50   float64 `json:"p50"`
	P90   float64 `json:"p90"`
	P99   float64 `json:"p99"`
	Max   float64 `json:"max"`
}

// SummarizeWaits computes WaitStats over waits. Zero waits give zero stats.
func SummarizeWaits(waits []float64) WaitStats {
	if len(waits) == 0 {
		return WaitStats{}
	}
	sorted := slices.Clone(waits)
	slices.Sort(sorted)

	sum := 0.0
	for _, w := range sorted {
		sum += w
	}
	return WaitStats{
		Count: len(sorted),
		Mean:  sum / float64(len(sorted)),
		P50:   Percentile(sorted, 50),
		P90:   Percentile(sorted, 90),
		P99:   Percentile(sorted, 99),
		Max:   sorted[len(sorted)-1],
	}
}

// Percentile returns the p-th percentile of sorted data, interpolating
// linearly between closest ranks. data must be sorted ascending and non-empty.
func Percentile(data []float64, p float64) float64 {
	n := len(data)
	rank := p / 100.0 * float64(n-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if upper >= n {
		return data[n-1]
	}
	if lower == upper {
		return data[lower]
	}
	return data[lower] + (data[upper]-data[lower])*(rank-float64(lower))
}
