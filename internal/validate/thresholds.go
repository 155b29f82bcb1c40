// internal/validate/thresholds.go
// Package: validate
package validate

// Thresholds is the statistical protocol a performance claim must satisfy.
// A Validator is constructed with an explicit Thresholds value rather than
// reading package-level constants, so different protocols can coexist.
type Thresholds struct {
	// MinSampleSize is the minimum number of measurements required per
	// condition.
	MinSampleSize int `json:"min_sample_size" mapstructure:"min_sample_size"`

	// SignificanceLevel is the alpha below which a p-value counts as
	// statistically significant.
	SignificanceLevel float64 `json:"significance_level" mapstructure:"significance_level"`

	// MinEffectSize is the minimum |Cohen's d| that counts as practically
	// significant.
	MinEffectSize float64 `json:"min_effect_size" mapstructure:"min_effect_size"`

	// ConfidenceLevel is the confidence level reported for intervals.
	ConfidenceLevel float64 `json:"confidence_level" mapstructure:"confidence_level"`

	// MaxCV is the maximum coefficient of variation tolerated per condition
	// before the sample is flagged as too noisy.
	MaxCV float64 `json:"max_cv" mapstructure:"max_cv"`
}

// DefaultThresholds returns the standard validation protocol: at least 30
// samples per condition, p < 0.05, |d| >= 0.5 (medium effect), 95%
// confidence, CV <= 0.3.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinSampleSize:     30,
		SignificanceLevel: 0.05,
		MinEffectSize:     0.5,
		ConfidenceLevel:   0.95,
		MaxCV:             0.3,
	}
}
