// internal/benchmark/parse_test.go
package benchmark

import (
	"strings"
	"testing"
)

func TestParseOutput(t *testing.T) {
	cases := []struct {
		name           string
		output         string
		wantLatency    float64
		wantThroughput float64
		wantErr        bool
	}{
		{
			name:           "key value pairs",
			output:         "latency_ms=152.4 throughput_rps=31.2",
			wantLatency:    152.4,
			wantThroughput: 31.2,
		},
		{
			name:           "human readable",
			output:         "Average latency: 152.4ms\nThroughput: 31.2 req/s\n",
			wantLatency:    152.4,
			wantThroughput: 31.2,
		},
		{
			name:        "latency only",
			output:      "latency_ms: 99",
			wantLatency: 99,
		},
		{
			name:    "no latency",
			output:  "requests complete, all good",
			wantErr: true,
		},
		{
			name:    "empty output",
			output:  "",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			latency, throughput, err := ParseOutput(tc.output)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if latency != tc.wantLatency {
				t.Errorf("latency = %v, want %v", latency, tc.wantLatency)
			}
			if throughput != tc.wantThroughput {
				t.Errorf("throughput = %v, want %v", throughput, tc.wantThroughput)
			}
		})
	}
}

func TestParseOutput_MultilineTakesFirstMatch(t *testing.T) {
	out := strings.Join([]string{
		"warming up...",
		"latency_ms=100.0",
		"latency_ms=999.0",
	}, "\n")
	latency, _, err := ParseOutput(out)
	if err != nil {
		t.Fatal(err)
	}
	if latency != 100 {
		t.Errorf("latency = %v, want first match 100", latency)
	}
}
