// internal/stats/percentile.go
// Package: stats
package stats

import "math"

// Percentile returns the p-th percentile (p in [0,100]) of sortedValues
// using linear interpolation between adjacent order statistics. The input
// must already be sorted ascending.
//
// An empty slice yields 0; callers are expected to reject empty samples
// before computing percentiles. A single-element slice returns that element
// for any p.
func Percentile(sortedValues []float64, p float64) float64 {
	n := len(sortedValues)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sortedValues[0]
	}

	rank := (p / 100.0) * float64(n-1)
	lower := int(math.Floor(rank))
	upper := lower + 1
	if upper > n-1 {
		upper = n - 1
	}
	if lower == upper {
		return sortedValues[lower]
	}

	weight := rank - float64(lower)
	return sortedValues[lower]*(1-weight) + sortedValues[upper]*weight
}
