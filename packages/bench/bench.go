// Package bench measures parse latency over repeated runs of a single
// command, reporting percentiles from an HDR histogram.
package bench

import (
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/abdul-hamid-achik/curlparse/packages/core/parser"
)

// Histogram range: 1us to 1s, 3 significant digits. Parsing a bounded
// command-line string never approaches the upper bound.
const (
	minLatencyUs = 1
	maxLatencyUs = 1_000_000
)

// Result summarizes one benchmark run.
type Result struct {
	Iterations int
	Entries    int
	Total      time.Duration

	P50    time.Duration
	P95    time.Duration
	P99    time.Duration
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	StdDev time.Duration
}

// Run parses the command iterations times and aggregates per-iteration
// latency. The command must parse successfully; parsing is
// deterministic, so a single up-front parse validates all iterations.
func Run(command string, iterations int) (*Result, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	entries, err := parser.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("command does not parse: %w", err)
	}

	hist := hdrhistogram.New(minLatencyUs, maxLatencyUs, 3)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		iterStart := time.Now()
		_, _ = parser.Parse(command)
		latencyUs := time.Since(iterStart).Microseconds()
		if latencyUs < minLatencyUs {
			latencyUs = minLatencyUs
		}
		if latencyUs > maxLatencyUs {
			latencyUs = maxLatencyUs
		}
		_ = hist.RecordValue(latencyUs)
	}
	total := time.Since(start)

	return &Result{
		Iterations: iterations,
		Entries:    len(entries),
		Total:      total,
		P50:        time.Duration(hist.ValueAtQuantile(50)) * time.Microsecond,
		P95:        time.Duration(hist.ValueAtQuantile(95)) * time.Microsecond,
		P99:        time.Duration(hist.ValueAtQuantile(99)) * time.Microsecond,
		Min:        time.Duration(hist.Min()) * time.Microsecond,
		Max:        time.Duration(hist.Max()) * time.Microsecond,
		Mean:       time.Duration(hist.Mean()) * time.Microsecond,
		StdDev:     time.Duration(hist.StdDev()) * time.Microsecond,
	}, nil
}
