// cmd/perfval/validate.go
package perfval

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MorchestraWorld/perfval/internal/benchmark"
	"github.com/MorchestraWorld/perfval/internal/tui"
	"github.com/MorchestraWorld/perfval/internal/validate"
)

// errValidationFailed drives the non-zero exit code when the statistical
// gate does not pass. The report itself has already been printed by then.
var errValidationFailed = errors.New("validation failed: performance claims are not statistically supported")

// validateCmd implements 'validate', the main entrypoint: it loads or
// collects two measurement sets, runs the statistical validation protocol
// and renders the report. The process exits non-zero when the claim is not
// validated.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a baseline/optimized performance comparison",
	Long: `The 'validate' command compares two sets of latency measurements. Either
supply both --baseline-data and --optimized-data JSON files, or supply
--run-benchmark with the path of a benchmark binary to collect fresh
measurements for both conditions. The resulting report states whether the
performance claim is statistically supported.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	f := validateCmd.Flags()
	f.String("baseline-data", "", "JSON file with baseline measurements")
	f.String("optimized-data", "", "JSON file with optimized measurements")
	f.String("run-benchmark", "", "path to a benchmark binary; runs both conditions")
	f.String("url", "http://localhost:8080", "target URL for benchmark mode")
	f.Int("requests", 50, "number of requests per condition in benchmark mode")
	f.Duration("timeout", benchmark.DefaultTimeout, "per-request timeout in benchmark mode")
	f.String("output", "", "write the validation report to this file instead of stdout")
	f.String("save-measurements", "", "directory for raw measurement JSON in benchmark mode")
	f.Bool("exact", false, "use the exact Student's-t CDF instead of the approximate normal CDF")
	f.Bool("no-progress", false, "disable the interactive progress display in benchmark mode")
	f.Bool("debug", false, "dump the resolved settings before running")

	f.Int("min-samples", validate.DefaultThresholds().MinSampleSize, "minimum sample size per condition")
	f.Float64("alpha", validate.DefaultThresholds().SignificanceLevel, "significance level")
	f.Float64("min-effect", validate.DefaultThresholds().MinEffectSize, "minimum |Cohen's d| for practical significance")
	f.Float64("max-cv", validate.DefaultThresholds().MaxCV, "maximum coefficient of variation per condition")

	viper.BindPFlag("baseline-data", f.Lookup("baseline-data"))
	viper.BindPFlag("optimized-data", f.Lookup("optimized-data"))
	viper.BindPFlag("run-benchmark", f.Lookup("run-benchmark"))
	viper.BindPFlag("url", f.Lookup("url"))
	viper.BindPFlag("requests", f.Lookup("requests"))
	viper.BindPFlag("timeout", f.Lookup("timeout"))
	viper.BindPFlag("output", f.Lookup("output"))
	viper.BindPFlag("save-measurements", f.Lookup("save-measurements"))
	viper.BindPFlag("exact", f.Lookup("exact"))
	viper.BindPFlag("no-progress", f.Lookup("no-progress"))
	viper.BindPFlag("debug", f.Lookup("debug"))
	viper.BindPFlag("min_sample_size", f.Lookup("min-samples"))
	viper.BindPFlag("significance_level", f.Lookup("alpha"))
	viper.BindPFlag("min_effect_size", f.Lookup("min-effect"))
	viper.BindPFlag("max_cv", f.Lookup("max-cv"))
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	thr := resolveThresholds()
	v := validate.New(thr)
	v.ExactPValue = viper.GetBool("exact")

	if viper.GetBool("debug") {
		pp.Println(thr)
	}

	baseline, optimized, err := collectSamples(cmd.Context(), thr)
	if err != nil {
		return err
	}

	res, err := v.Validate(baseline, optimized)
	if err != nil {
		return err
	}

	report := validate.RenderReport(res, thr)
	if out := viper.GetString("output"); out != "" {
		if err := os.WriteFile(out, []byte(report), 0o644); err != nil {
			return fmt.Errorf("could not write report: %w", err)
		}
		fmt.Printf("Validation report written to %s\n", out)
	} else {
		fmt.Println(report)
	}

	fmt.Println(validate.VerdictLine(res))
	if !res.Valid() {
		return errValidationFailed
	}
	return nil
}

// collectSamples produces the two latency samples, either from JSON files
// or by running the benchmark binary for both conditions.
func collectSamples(ctx context.Context, thr validate.Thresholds) (baseline, optimized []float64, err error) {
	basePath := viper.GetString("baseline-data")
	optPath := viper.GetString("optimized-data")
	binary := viper.GetString("run-benchmark")

	switch {
	case basePath != "" && optPath != "":
		baseMs, err := benchmark.LoadMeasurements(basePath)
		if err != nil {
			return nil, nil, err
		}
		optMs, err := benchmark.LoadMeasurements(optPath)
		if err != nil {
			return nil, nil, err
		}
		return benchmark.Latencies(baseMs), benchmark.Latencies(optMs), nil

	case binary != "":
		baseMs, optMs, err := runBenchmarks(ctx, binary, thr)
		if err != nil {
			return nil, nil, err
		}
		return benchmark.Latencies(baseMs), benchmark.Latencies(optMs), nil

	default:
		return nil, nil, errors.New("must provide either --baseline-data and --optimized-data, or --run-benchmark")
	}
}

// runBenchmarks collects fresh measurements for both conditions, with a
// progress display unless --no-progress is set.
func runBenchmarks(ctx context.Context, binary string, thr validate.Thresholds) (baseMs, optMs []benchmark.Measurement, err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	requests := viper.GetInt("requests")
	if requests < thr.MinSampleSize {
		fmt.Printf("WARNING: request count %d < minimum %d\n", requests, thr.MinSampleSize)
	}

	newRunner := func(progress func(done, total int)) *benchmark.Runner {
		return &benchmark.Runner{
			Binary:   binary,
			URL:      viper.GetString("url"),
			Requests: requests,
			Timeout:  viper.GetDuration("timeout"),
			Progress: progress,
		}
	}

	if viper.GetBool("no-progress") {
		fmt.Println("Running baseline benchmark...")
		if baseMs, err = newRunner(nil).Run(ctx); err != nil {
			return nil, nil, err
		}
		fmt.Println("Running optimized benchmark...")
		if optMs, err = newRunner(nil).Run(ctx); err != nil {
			return nil, nil, err
		}
	} else {
		p := tea.NewProgram(tui.NewModel())

		batchCtx, cancelBatch := context.WithCancel(ctx)
		defer cancelBatch()

		workerDone := make(chan struct{})
		go func() {
			defer close(workerDone)
			defer p.Send(tui.DoneMsg{})
			baseMs, optMs, err = runConditions(batchCtx, p.Send, newRunner)
		}()

		_, runErr := p.Run()
		// The UI can also exit on ctrl+c. Cancel the batch and wait for the
		// worker before touching baseMs/optMs/err.
		cancelBatch()
		<-workerDone

		if runErr != nil {
			return nil, nil, runErr
		}
		if err != nil {
			if errors.Is(err, context.Canceled) && ctx.Err() == nil {
				return nil, nil, errors.New("benchmark interrupted before both conditions completed")
			}
			return nil, nil, err
		}
	}

	saveErr := saveMeasurementBatches(baseMs, optMs)
	if saveErr != nil {
		return nil, nil, saveErr
	}
	return baseMs, optMs, nil
}

// runConditions measures baseline then optimized, reporting progress
// through notify. Cancelling ctx stops the batch and makes the in-flight
// runner return the context error.
func runConditions(ctx context.Context, notify func(tea.Msg), newRunner func(progress func(done, total int)) *benchmark.Runner) (baseMs, optMs []benchmark.Measurement, err error) {
	send := func(done, total int) { notify(tui.ProgressMsg{Done: done, Total: total}) }

	notify(tui.ConditionMsg{Name: "baseline"})
	if baseMs, err = newRunner(send).Run(ctx); err != nil {
		return nil, nil, err
	}
	notify(tui.ConditionMsg{Name: "optimized"})
	if optMs, err = newRunner(send).Run(ctx); err != nil {
		return nil, nil, err
	}
	return baseMs, optMs, nil
}

// saveMeasurementBatches writes the raw batches when --save-measurements
// names a directory.
func saveMeasurementBatches(baseMs, optMs []benchmark.Measurement) error {
	if dir := viper.GetString("save-measurements"); dir != "" {
		stamp := time.Now().Format("20060102-150405")
		if err := benchmark.SaveMeasurements(filepath.Join(dir, "baseline-"+stamp+".json"), baseMs); err != nil {
			return err
		}
		if err := benchmark.SaveMeasurements(filepath.Join(dir, "optimized-"+stamp+".json"), optMs); err != nil {
			return err
		}
	}
	return nil
}
