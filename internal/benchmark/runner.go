// internal/benchmark/runner.go
// Package: benchmark
package benchmark

import (
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds a single benchmark invocation.
const DefaultTimeout = 30 * time.Second

// Runner shells out to a benchmark binary once per request and collects one
// Measurement per invocation. A failed invocation (timeout, non-zero exit,
// unparseable output) is recorded as an unsuccessful Measurement rather
// than aborting the batch; only cancellation of the parent context stops a
// run early.
type Runner struct {
	// Binary is the path of the benchmark executable.
	Binary string

	// URL is the target passed to the binary via -url.
	URL string

	// Requests is the number of invocations per condition. Each invocation
	// runs a single request at concurrency 1 so that every sample is an
	// independent measurement.
	Requests int

	// Timeout bounds one invocation. Zero means DefaultTimeout.
	Timeout time.Duration

	// Progress, when set, is called after each completed invocation with
	// the number done and the total.
	Progress func(done, total int)
}

// Run executes the batch and returns every measurement, failed ones
// included. The returned error is non-nil only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context) ([]Measurement, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	measurements := make([]Measurement, 0, r.Requests)
	for i := 0; i < r.Requests; i++ {
		if err := ctx.Err(); err != nil {
			return measurements, err
		}
		measurements = append(measurements, r.runOne(ctx, timeout))
		if r.Progress != nil {
			r.Progress(i+1, r.Requests)
		}
	}
	return measurements, nil
}

// runOne performs a single bounded invocation.
func (r *Runner) runOne(ctx context.Context, timeout time.Duration) Measurement {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.Binary,
		"-url", r.URL,
		"-requests", "1",
		"-concurrency", "1")

	out, err := cmd.Output()
	m := Measurement{Timestamp: time.Now(), Success: true}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		m.Success = false
		m.Error = "timeout"
		return m
	}
	if err != nil {
		m.Success = false
		m.Error = commandError(err)
		return m
	}

	latency, throughput, perr := ParseOutput(string(out))
	if perr != nil {
		m.Success = false
		m.Error = perr.Error()
		return m
	}

	m.LatencyMillis = latency
	m.ThroughputRPS = throughput
	return m
}

// commandError condenses an exec failure into a recordable message,
// preferring stderr over the bare exit status.
func commandError(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
			return "exit " + strconv.Itoa(exitErr.ExitCode()) + ": " + msg
		}
		return "exit " + strconv.Itoa(exitErr.ExitCode())
	}
	return err.Error()
}
