// internal/benchmark/parse.go
// Package: benchmark
package benchmark

import (
	"fmt"
	"regexp"
	"strconv"
)

// Benchmark binaries differ in how they print results. The parser accepts
// both machine-friendly key=value pairs and the common human-readable
// phrasing:
//
//	latency_ms=152.4 throughput_rps=31.2
//	Average latency: 152.4ms
//	Throughput: 31.2 req/s
var (
	latencyPattern    = regexp.MustCompile(`(?i)(?:latency_ms\s*[=:]\s*|average latency:\s*)([0-9]+(?:\.[0-9]+)?)`)
	throughputPattern = regexp.MustCompile(`(?i)(?:throughput_rps\s*[=:]\s*|throughput:\s*)([0-9]+(?:\.[0-9]+)?)`)
)

// ParseOutput extracts latency (ms) and throughput (req/s) from benchmark
// stdout. Latency is mandatory; throughput is optional and reported as 0
// when absent.
func ParseOutput(output string) (latencyMS, throughputRPS float64, err error) {
	m := latencyPattern.FindStringSubmatch(output)
	if m == nil {
		return 0, 0, fmt.Errorf("no latency value found in benchmark output")
	}
	latencyMS, err = strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad latency value %q: %w", m[1], err)
	}

	if tm := throughputPattern.FindStringSubmatch(output); tm != nil {
		throughputRPS, err = strconv.ParseFloat(tm[1], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("bad throughput value %q: %w", tm[1], err)
		}
	}
	return latencyMS, throughputRPS, nil
}
