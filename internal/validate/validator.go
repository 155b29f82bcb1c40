// internal/validate/validator.go
// Package: validate
package validate

import (
	"fmt"
	"math"

	"github.com/MorchestraWorld/perfval/internal/stats"
)

// Result is the outcome of validating one baseline/optimized comparison.
// It carries both the statistical comparison and the protocol findings.
// Violations are part of the return value rather than validator state, so a
// single Validator can be shared across concurrent calls.
type Result struct {
	BaselineStats  stats.Summary `json:"baseline_stats"`
	OptimizedStats stats.Summary `json:"optimized_stats"`

	// ImprovementAbsolute is optimized mean minus baseline mean, in the
	// units of the measurements. ImprovementPercent is the same relative to
	// the baseline mean (0 when the baseline mean is 0). Negative values
	// mean the optimized condition is faster.
	ImprovementAbsolute float64 `json:"improvement_absolute"`
	ImprovementPercent  float64 `json:"improvement_percent"`

	Comparison stats.Comparison `json:"comparison"`

	StatisticalSignificance bool `json:"statistical_significance"`
	PracticalSignificance   bool `json:"practical_significance"`
	SampleAdequate          bool `json:"sample_adequate"`

	// Violations lists every protocol finding (inadequate sample sizes,
	// excessive variability). Non-fatal, but any entry invalidates the
	// claim.
	Violations []string `json:"violations"`
}

// Valid reports whether the performance claim holds. All four conditions
// must pass; this is a conjunctive gate, not a weighted score.
func (r Result) Valid() bool {
	return r.SampleAdequate &&
		r.StatisticalSignificance &&
		r.PracticalSignificance &&
		len(r.Violations) == 0
}

// Validator applies a Thresholds protocol to baseline/optimized sample
// pairs. The zero value is unusable; construct with New.
type Validator struct {
	// Thresholds is the protocol enforced by Validate.
	Thresholds Thresholds

	// ExactPValue switches the comparator from the report-compatible tanh
	// approximation to the Student's-t CDF.
	ExactPValue bool
}

// New returns a Validator enforcing the given thresholds.
func New(t Thresholds) *Validator {
	return &Validator{Thresholds: t}
}

// Validate runs the full protocol over the two samples and returns a
// self-contained Result. It fails only when either sample is empty; all
// other shortfalls (small samples, noisy data, weak effects) are reported
// through the Result.
func (v *Validator) Validate(baseline, optimized []float64) (Result, error) {
	var res Result

	res.SampleAdequate = true
	if n := len(baseline); n < v.Thresholds.MinSampleSize {
		res.SampleAdequate = false
		res.Violations = append(res.Violations,
			fmt.Sprintf("Insufficient baseline sample size: %d < %d", n, v.Thresholds.MinSampleSize))
	}
	if n := len(optimized); n < v.Thresholds.MinSampleSize {
		res.SampleAdequate = false
		res.Violations = append(res.Violations,
			fmt.Sprintf("Insufficient optimized sample size: %d < %d", n, v.Thresholds.MinSampleSize))
	}

	var err error
	if res.BaselineStats, err = stats.Summarize(baseline); err != nil {
		return Result{}, fmt.Errorf("baseline: %w", err)
	}
	if res.OptimizedStats, err = stats.Summarize(optimized); err != nil {
		return Result{}, fmt.Errorf("optimized: %w", err)
	}

	if cv := res.BaselineStats.CoefficientOfVariation; cv > v.Thresholds.MaxCV {
		res.Violations = append(res.Violations,
			fmt.Sprintf("High baseline variability: CV=%.3f > %g", cv, v.Thresholds.MaxCV))
	}
	if cv := res.OptimizedStats.CoefficientOfVariation; cv > v.Thresholds.MaxCV {
		res.Violations = append(res.Violations,
			fmt.Sprintf("High optimized variability: CV=%.3f > %g", cv, v.Thresholds.MaxCV))
	}

	res.ImprovementAbsolute = res.OptimizedStats.Mean - res.BaselineStats.Mean
	if res.BaselineStats.Mean != 0 {
		res.ImprovementPercent = res.ImprovementAbsolute / res.BaselineStats.Mean * 100
	}

	res.Comparison = stats.Compare(baseline, optimized, v.ExactPValue)

	res.StatisticalSignificance = res.Comparison.PValue < v.Thresholds.SignificanceLevel
	res.PracticalSignificance = math.Abs(res.Comparison.CohensD) >= v.Thresholds.MinEffectSize

	return res, nil
}

// InterpretEffectSize maps |Cohen's d| onto the conventional bands. Used
// only for reporting; the validity gate compares against MinEffectSize
// directly.
func InterpretEffectSize(d float64) string {
	switch ad := math.Abs(d); {
	case ad < 0.2:
		return "Negligible effect"
	case ad < 0.5:
		return "Small effect"
	case ad < 0.8:
		return "Medium effect"
	default:
		return "Large effect"
	}
}
