// internal/benchmark/measurement.go
// Package: benchmark
package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Measurement is a single benchmark observation. Failed runs (timeouts,
// non-zero exits, unparseable output) are kept with Success=false so the
// batch record stays complete; only successful latencies feed the
// statistics.
type Measurement struct {
	LatencyMillis float64   `json:"latency_ms"`
	ThroughputRPS float64   `json:"throughput_rps,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Success       bool      `json:"success"`
	Error         string    `json:"error,omitempty"`
}

// UnmarshalJSON defaults Success to true when the field is absent, so
// minimal {"latency_ms": ...} records count as successful.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	type plain Measurement
	aux := plain{Success: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*m = Measurement(aux)
	return nil
}

// LoadMeasurements reads a JSON array of measurements from path.
func LoadMeasurements(path string) ([]Measurement, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read measurements file: %w", err)
	}
	var ms []Measurement
	if err := json.Unmarshal(b, &ms); err != nil {
		return nil, fmt.Errorf("could not parse measurements JSON %s: %w", path, err)
	}
	return ms, nil
}

// SaveMeasurements writes the raw batch to path as indented JSON.
func SaveMeasurements(path string, ms []Measurement) error {
	b, err := json.MarshalIndent(ms, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Latencies extracts the latency values of successful measurements, the
// sample the statistics engine consumes.
func Latencies(ms []Measurement) []float64 {
	var out []float64
	for _, m := range ms {
		if m.Success {
			out = append(out, m.LatencyMillis)
		}
	}
	return out
}
