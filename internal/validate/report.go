// internal/validate/report.go
// Package: validate
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MorchestraWorld/perfval/internal/stats"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func yesNo(ok bool) string {
	if ok {
		return "✅ YES"
	}
	return "❌ NO"
}

func passFail(ok bool) string {
	if ok {
		return "✅ PASS"
	}
	return "❌ FAIL"
}

// RenderReport produces the markdown validation report for res under the
// given thresholds. The output is plain markdown, safe to write to a file.
func RenderReport(res Result, thr Thresholds) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# 📊 Statistical Performance Validation Report\n\n")
	fmt.Fprintf(&b, "**Generated**: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "**Validation Standard**: %g%% confidence, p<%g\n", thr.ConfidenceLevel*100, thr.SignificanceLevel)
	fmt.Fprintf(&b, "**P-value Method**: %s\n\n", res.Comparison.Method)

	fmt.Fprintf(&b, "## 🎯 Executive Summary\n\n")
	fmt.Fprintf(&b, "**Performance Change**: %+.1f%% (%+.1fms)\n", res.ImprovementPercent, res.ImprovementAbsolute)
	fmt.Fprintf(&b, "**Statistical Significance**: %s (p=%.4f)\n", yesNo(res.StatisticalSignificance), res.Comparison.PValue)
	fmt.Fprintf(&b, "**Practical Significance**: %s (d=%.3f)\n", yesNo(res.PracticalSignificance), res.Comparison.CohensD)
	fmt.Fprintf(&b, "**Sample Size Adequate**: %s\n\n", yesNo(res.SampleAdequate))

	fmt.Fprintf(&b, "## 📈 Statistical Results\n\n")
	writeConditionSection(&b, "Baseline Performance", res.BaselineStats)
	writeConditionSection(&b, "Optimized Performance", res.OptimizedStats)

	fmt.Fprintf(&b, "### Statistical Comparison\n")
	fmt.Fprintf(&b, "- **Improvement**: %+.1f%% (%+.1fms)\n", res.ImprovementPercent, res.ImprovementAbsolute)
	fmt.Fprintf(&b, "- **95%% CI for Difference**: [%.1f, %.1f]ms\n", res.Comparison.DiffLower, res.Comparison.DiffUpper)
	fmt.Fprintf(&b, "- **P-value**: %.4f\n", res.Comparison.PValue)
	fmt.Fprintf(&b, "- **Effect Size (Cohen's d)**: %.3f\n", res.Comparison.CohensD)
	fmt.Fprintf(&b, "- **Effect Interpretation**: %s\n\n", InterpretEffectSize(res.Comparison.CohensD))

	fmt.Fprintf(&b, "## ✅ Validation Status\n\n")
	fmt.Fprintf(&b, "### Statistical Requirements\n")
	fmt.Fprintf(&b, "- **Sample Size**: %s (n≥%d)\n", passFail(res.SampleAdequate), thr.MinSampleSize)
	fmt.Fprintf(&b, "- **Statistical Significance**: %s (p<%g)\n", passFail(res.StatisticalSignificance), thr.SignificanceLevel)
	fmt.Fprintf(&b, "- **Effect Size**: %s (|d|≥%g)\n", passFail(res.PracticalSignificance), thr.MinEffectSize)
	fmt.Fprintf(&b, "- **Baseline Stability**: %s (CV≤%g)\n\n", passFail(res.BaselineStats.CoefficientOfVariation <= thr.MaxCV), thr.MaxCV)

	fmt.Fprintf(&b, "### Overall Validation\n")
	if res.Valid() {
		fmt.Fprintf(&b, "✅ VALIDATED: Performance improvement claim\n\n")
	} else {
		fmt.Fprintf(&b, "❌ NOT VALIDATED: Performance improvement claim\n\n")
	}

	fmt.Fprintf(&b, "## 🚨 Violations Found\n")
	if len(res.Violations) == 0 {
		fmt.Fprintf(&b, "- ✅ No violations found\n")
	}
	for _, v := range res.Violations {
		fmt.Fprintf(&b, "- ❌ %s\n", v)
	}

	fmt.Fprintf(&b, "\n## 🎯 Recommendations\n\n")
	for _, rec := range Recommendations(res, thr) {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	fmt.Fprintf(&b, "\n---\n")
	fmt.Fprintf(&b, "*This report meets statistical validation protocol requirements.*\n")
	fmt.Fprintf(&b, "*Performance claims are only valid if all validation criteria pass.*\n")

	return b.String()
}

// writeConditionSection renders the per-condition descriptive block.
func writeConditionSection(b *strings.Builder, title string, s stats.Summary) {
	fmt.Fprintf(b, "### %s\n", title)
	fmt.Fprintf(b, "- **Mean**: %.1fms\n", s.Mean)
	fmt.Fprintf(b, "- **Median**: %.1fms\n", s.Median)
	fmt.Fprintf(b, "- **Std Dev**: %.1fms\n", s.StdDev)
	fmt.Fprintf(b, "- **95%% CI**: [%.1f, %.1f]ms\n", s.CILower, s.CIUpper)
	fmt.Fprintf(b, "- **p95 / p99**: %.1f / %.1fms\n", s.P95, s.P99)
	fmt.Fprintf(b, "- **Sample Size**: n=%d\n", s.SampleSize)
	fmt.Fprintf(b, "- **Coefficient of Variation**: %.3f\n\n", s.CoefficientOfVariation)
}

// Recommendations derives the actionable follow-ups for a result. An
// all-clear result gets a single confirmation line.
func Recommendations(res Result, thr Thresholds) []string {
	var recs []string

	if !res.SampleAdequate {
		recs = append(recs, fmt.Sprintf("Increase sample size to at least %d per condition", thr.MinSampleSize))
	}
	if !res.StatisticalSignificance {
		recs = append(recs, "No statistical significance detected - improvement may be due to chance")
	}
	if !res.PracticalSignificance {
		recs = append(recs, "Effect size is small - improvement may not be practically meaningful")
	}
	if res.BaselineStats.CoefficientOfVariation > thr.MaxCV {
		recs = append(recs, "High baseline variability - consider controlling external factors")
	}
	if len(res.Violations) > 0 {
		recs = append(recs, "Address all validation violations before making performance claims")
	}

	if len(recs) == 0 {
		recs = append(recs, "All validation criteria met - performance improvement is statistically supported")
	}
	return recs
}

// VerdictLine is the styled one-line terminal verdict, separate from the
// markdown report so files stay free of ANSI escapes.
func VerdictLine(res Result) string {
	if res.Valid() {
		return passStyle.Render("✅ VALIDATION PASSED: Performance claims are statistically supported")
	}
	return failStyle.Render("🚨 VALIDATION FAILED: Performance claims are not statistically supported")
}
