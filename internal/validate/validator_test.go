// internal/validate/validator_test.go
package validate

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

// alternating builds a deterministic sample of size n with the given mean
// and a spread of +/-delta around it.
func alternating(mean, delta float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if i%2 == 0 {
			out[i] = mean - delta
		} else {
			out[i] = mean + delta
		}
	}
	return out
}

func TestValidate_EmptySampleFails(t *testing.T) {
	v := New(DefaultThresholds())
	if _, err := v.Validate(nil, []float64{1, 2, 3}); err == nil {
		t.Fatal("expected error for empty baseline")
	}
	if _, err := v.Validate([]float64{1, 2, 3}, nil); err == nil {
		t.Fatal("expected error for empty optimized")
	}
}

func TestValidate_SmallSamplesFlaggedBothSides(t *testing.T) {
	v := New(DefaultThresholds())

	res, err := v.Validate([]float64{1, 1, 1, 1, 1}, []float64{1, 1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if res.SampleAdequate {
		t.Error("SampleAdequate = true for n=5")
	}
	if len(res.Violations) != 2 {
		t.Fatalf("violations = %v, want one per side", res.Violations)
	}
	for _, violation := range res.Violations {
		if !strings.Contains(violation, "5 < 30") {
			t.Errorf("violation %q does not name actual vs required count", violation)
		}
	}
	if res.Valid() {
		t.Error("claim must not be valid with inadequate samples")
	}
}

func TestValidate_LargeImprovementPasses(t *testing.T) {
	baseline := alternating(100, 5, 40)
	optimized := alternating(80, 5, 40)

	v := New(DefaultThresholds())
	res, err := v.Validate(baseline, optimized)
	if err != nil {
		t.Fatal(err)
	}

	if !res.SampleAdequate {
		t.Error("SampleAdequate = false for n=40")
	}
	if !res.StatisticalSignificance {
		t.Errorf("StatisticalSignificance = false (p=%v)", res.Comparison.PValue)
	}
	if !res.PracticalSignificance {
		t.Errorf("PracticalSignificance = false (d=%v)", res.Comparison.CohensD)
	}
	if math.Abs(res.ImprovementPercent-(-20)) > 1e-9 {
		t.Errorf("ImprovementPercent = %v, want -20", res.ImprovementPercent)
	}
	if math.Abs(res.ImprovementAbsolute-(-20)) > 1e-9 {
		t.Errorf("ImprovementAbsolute = %v, want -20", res.ImprovementAbsolute)
	}
	if math.Abs(res.Comparison.CohensD+4) > 0.1 {
		t.Errorf("CohensD = %v, want about -4", res.Comparison.CohensD)
	}
	if len(res.Violations) != 0 {
		t.Errorf("unexpected violations: %v", res.Violations)
	}
	if !res.Valid() {
		t.Error("expected a valid claim")
	}
}

func TestValidate_HighVariabilityFlagged(t *testing.T) {
	// CV = 50/100 = 0.5 on both sides, above the 0.3 limit.
	baseline := alternating(100, 50, 40)
	optimized := alternating(60, 30, 40)

	v := New(DefaultThresholds())
	res, err := v.Validate(baseline, optimized)
	if err != nil {
		t.Fatal(err)
	}

	var sawBaseline, sawOptimized bool
	for _, violation := range res.Violations {
		if strings.Contains(violation, "baseline variability") {
			sawBaseline = true
		}
		if strings.Contains(violation, "optimized variability") {
			sawOptimized = true
		}
	}
	if !sawBaseline || !sawOptimized {
		t.Errorf("expected variability violations for both sides, got %v", res.Violations)
	}
	if res.Valid() {
		t.Error("claim must not be valid with variability violations")
	}
}

func TestValidate_ConjunctiveGate(t *testing.T) {
	// A huge, clearly significant improvement still fails the gate when the
	// sample size requirement is tightened past the data.
	thr := DefaultThresholds()
	thr.MinSampleSize = 100

	v := New(thr)
	res, err := v.Validate(alternating(100, 5, 40), alternating(50, 5, 40))
	if err != nil {
		t.Fatal(err)
	}

	if !res.StatisticalSignificance || !res.PracticalSignificance {
		t.Fatalf("test setup broken: expected significant comparison, got %+v", res.Comparison)
	}
	if res.Valid() {
		t.Error("gate must fail on sample adequacy alone")
	}
}

func TestValidate_Idempotent(t *testing.T) {
	baseline := alternating(100, 10, 35)
	optimized := alternating(90, 10, 35)

	v := New(DefaultThresholds())
	first, err := v.Validate(baseline, optimized)
	if err != nil {
		t.Fatal(err)
	}
	second, err := v.Validate(baseline, optimized)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated validation differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestValidate_NoDifferenceNotSignificant(t *testing.T) {
	sample := alternating(100, 5, 40)

	v := New(DefaultThresholds())
	res, err := v.Validate(sample, sample)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatisticalSignificance || res.PracticalSignificance {
		t.Errorf("identical samples must not be significant: %+v", res.Comparison)
	}
	if res.ImprovementPercent != 0 {
		t.Errorf("ImprovementPercent = %v, want 0", res.ImprovementPercent)
	}
	if res.Valid() {
		t.Error("no-difference comparison must not validate")
	}
}

func TestInterpretEffectSize(t *testing.T) {
	cases := []struct {
		d    float64
		want string
	}{
		{0, "Negligible effect"},
		{0.19, "Negligible effect"},
		{-0.3, "Small effect"},
		{0.5, "Medium effect"},
		{-0.79, "Medium effect"},
		{0.8, "Large effect"},
		{-4, "Large effect"},
	}
	for _, tc := range cases {
		if got := InterpretEffectSize(tc.d); got != tc.want {
			t.Errorf("InterpretEffectSize(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
