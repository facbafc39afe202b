// Package stats provides statistical utility functions for analyzers.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Percentile calculates the p-th percentile of a sorted slice.
// The slice must already be sorted in ascending order.
// Returns 0 if the slice is empty.
func Percentile(sorted []float64, p int) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := (p * len(sorted)) / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Distribution holds quartile-style percentiles of a metric.
type Distribution struct {
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`
}

// NewDistribution computes the 25/50/75/90th percentiles of values.
// The input does not need to be sorted.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return Distribution{
		P25: Percentile(sorted, 25),
		P50: Percentile(sorted, 50),
		P75: Percentile(sorted, 75),
		P90: Percentile(sorted, 90),
	}
}

// TrendStats holds regression statistics computed from a score series.
type TrendStats struct {
	Slope       float64 `json:"slope"`
	Intercept   float64 `json:"intercept"`
	RSquared    float64 `json:"r_squared"`
	Correlation float64 `json:"correlation"`
}

// ComputeTrend calculates regression statistics over successive scores,
// using the sample index as the x axis. Returns zero values for fewer
// than 2 points.
func ComputeTrend(scores []float64) TrendStats {
	n := len(scores)
	if n < 2 {
		return TrendStats{}
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}

	intercept, slope := stat.LinearRegression(xs, scores, nil, false)
	return TrendStats{
		Slope:       slope,
		Intercept:   intercept,
		RSquared:    stat.RSquared(xs, scores, nil, intercept, slope),
		Correlation: stat.Correlation(xs, scores, nil),
	}
}
