// internal/stats/summary.go
// Package: stats
package stats

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// ErrEmptySample is returned when descriptive statistics are requested for
// a sample with no values.
var ErrEmptySample = errors.New("stats: cannot summarize an empty sample")

// zCritical95 is the two-sided critical value of the standard normal
// distribution at 95% confidence. Confidence intervals here use the normal
// approximation rather than the exact t-distribution.
const zCritical95 = 1.96

// Summary is the full descriptive profile of one measurement sample.
// All fields are derived from the input values; a Summary is never mutated
// after construction.
type Summary struct {
	SampleSize int     `json:"sample_size"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	StdDev     float64 `json:"std_dev"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	P25        float64 `json:"p25"`
	P75        float64 `json:"p75"`
	P95        float64 `json:"p95"`
	P99        float64 `json:"p99"`

	// CILower and CIUpper bound the 95% confidence interval of the mean.
	// For a single-element sample the interval collapses to (Mean, Mean).
	CILower float64 `json:"ci_lower"`
	CIUpper float64 `json:"ci_upper"`

	// CoefficientOfVariation is StdDev/Mean, or 0 when Mean is 0.
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
}

// Summarize computes descriptive statistics for values. It returns
// ErrEmptySample when values is empty.
//
// StdDev is the Bessel-corrected sample standard deviation (divide by n-1)
// when n > 1 and 0 otherwise, matching the two-sample comparator.
func Summarize(values []float64) (Summary, error) {
	n := len(values)
	if n == 0 {
		return Summary{}, ErrEmptySample
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mean := stat.Mean(sorted, nil)

	var stdDev float64
	if n > 1 {
		stdDev = math.Sqrt(stat.Variance(sorted, nil))
	}

	ciLower, ciUpper := mean, mean
	if n > 1 {
		margin := zCritical95 * (stdDev / math.Sqrt(float64(n)))
		ciLower = mean - margin
		ciUpper = mean + margin
	}

	var cv float64
	if mean != 0 {
		cv = stdDev / mean
	}

	return Summary{
		SampleSize:             n,
		Mean:                   mean,
		Median:                 Percentile(sorted, 50),
		StdDev:                 stdDev,
		Min:                    sorted[0],
		Max:                    sorted[n-1],
		P25:                    Percentile(sorted, 25),
		P75:                    Percentile(sorted, 75),
		P95:                    Percentile(sorted, 95),
		P99:                    Percentile(sorted, 99),
		CILower:                ciLower,
		CIUpper:                ciUpper,
		CoefficientOfVariation: cv,
	}, nil
}
