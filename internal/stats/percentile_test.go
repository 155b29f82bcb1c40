// internal/stats/percentile_test.go
package stats

import (
	"math"
	"testing"
)

func TestPercentile_LinearInterpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}

	cases := []struct {
		name string
		p    float64
		want float64
	}{
		{"p0 is min", 0, 10},
		{"p100 is max", 100, 40},
		{"p50 interpolates midpoint", 50, 25},
		{"p25 interpolates", 25, 17.5},
		{"p75 interpolates", 75, 32.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Percentile(sorted, tc.p)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Percentile(%v, %v) = %v, want %v", sorted, tc.p, got, tc.want)
			}
		})
	}
}

func TestPercentile_EmptyReturnsZero(t *testing.T) {
	if got := Percentile(nil, 95); got != 0 {
		t.Fatalf("Percentile(nil, 95) = %v, want 0", got)
	}
}

func TestPercentile_SingleElement(t *testing.T) {
	for _, p := range []float64{0, 25, 50, 99, 100} {
		if got := Percentile([]float64{42}, p); got != 42 {
			t.Fatalf("Percentile([42], %v) = %v, want 42", p, got)
		}
	}
}

func TestPercentile_ExactRankLandsOnValue(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}
	// rank 0.5*(5-1) = 2 exactly, no interpolation.
	if got := Percentile(sorted, 50); got != 3 {
		t.Fatalf("Percentile = %v, want 3", got)
	}
}
