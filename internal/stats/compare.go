// internal/stats/compare.go
// Package: stats
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PValueMethod identifies how a two-sample p-value was computed.
type PValueMethod string

const (
	// PValueApprox is a tanh-based normal approximation. It is coarse but
	// reproduces the numbers of earlier validation reports.
	PValueApprox PValueMethod = "approximate normal CDF"

	// PValueStudentsT is the exact Student's-t CDF with Welch-Satterthwaite
	// degrees of freedom.
	PValueStudentsT PValueMethod = "Student's-t CDF"
)

// Comparison holds the raw outputs of a two-sample significance test.
type Comparison struct {
	TStat   float64      `json:"t_stat"`
	PValue  float64      `json:"p_value"`
	CohensD float64      `json:"cohens_d"`
	Method  PValueMethod `json:"p_value_method"`

	// DiffLower and DiffUpper bound the 95% confidence interval of the
	// difference of means (optimized - baseline). The interval collapses to
	// a point when either sample has fewer than two elements.
	DiffLower float64 `json:"diff_ci_lower"`
	DiffUpper float64 `json:"diff_ci_upper"`
}

// Compare runs a Welch-style two-sample comparison of baseline against
// optimized. When either sample has fewer than two elements, or both samples
// have zero variance, the result falls back to t=0, p=1, d=0: no
// significance is claimable, which is a defined outcome rather than an
// error.
//
// With exact=false the p-value uses the tanh normal approximation; with
// exact=true it uses the Student's-t distribution. The choice is recorded in
// Comparison.Method.
func Compare(baseline, optimized []float64, exact bool) Comparison {
	n1, n2 := len(baseline), len(optimized)

	c := Comparison{PValue: 1, Method: PValueApprox}
	if exact {
		c.Method = PValueStudentsT
	}

	var mean1, mean2 float64
	if n1 > 0 {
		mean1 = stat.Mean(baseline, nil)
	}
	if n2 > 0 {
		mean2 = stat.Mean(optimized, nil)
	}
	diff := mean2 - mean1
	c.DiffLower, c.DiffUpper = diff, diff

	if n1 < 2 || n2 < 2 {
		return c
	}

	var1 := stat.Variance(baseline, nil)
	var2 := stat.Variance(optimized, nil)

	se := math.Sqrt(var1/float64(n1) + var2/float64(n2))
	margin := zCritical95 * se
	c.DiffLower, c.DiffUpper = diff-margin, diff+margin

	pooled := math.Sqrt((float64(n1-1)*var1 + float64(n2-1)*var2) / float64(n1+n2-2))
	if pooled > 0 {
		c.CohensD = diff / pooled
	}

	if se == 0 {
		return c
	}

	c.TStat = diff / se
	if exact {
		c.PValue = studentsTPValue(c.TStat, var1, var2, n1, n2)
	} else {
		c.PValue = approxPValue(c.TStat)
	}
	return c
}

// approxPValue converts a t-statistic into a two-sided p-value using the
// approximate normal CDF.
func approxPValue(t float64) float64 {
	p := 2 * (1 - approxNormCDF(math.Abs(t)))
	return math.Min(p, 1)
}

// approxNormCDF approximates the standard normal CDF as
// 0.5 + 0.5*tanh(0.7x), saturating beyond |x|=6. Earlier validation reports
// were produced with this formula, so it is kept as the default for
// comparability.
func approxNormCDF(x float64) float64 {
	switch {
	case x > 6:
		return 1
	case x < -6:
		return 0
	}
	return 0.5 + 0.5*math.Tanh(0.7*x)
}

// studentsTPValue computes a two-sided p-value from the Student's-t
// distribution with Welch-Satterthwaite degrees of freedom.
func studentsTPValue(t, var1, var2 float64, n1, n2 int) float64 {
	a := var1 / float64(n1)
	b := var2 / float64(n2)
	df := (a + b) * (a + b) / (a*a/float64(n1-1) + b*b/float64(n2-1))
	if math.IsNaN(df) || df <= 0 {
		return 1
	}

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * dist.CDF(-math.Abs(t))
	return math.Min(p, 1)
}
