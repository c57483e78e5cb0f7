// Package graphing renders offline charts from one run's telemetry samples.
package graphing

import (
	"fmt"
	"os"
	"strings"

	"MetricsAnalyzer/pkg/analyzing"
	"MetricsAnalyzer/pkg/metrics"
)

// Series holds one derived metric over a run's timeline. Timestamps are
// milliseconds since epoch and align 1:1 with Values.
type Series struct {
	Name       string
	YLabel     string
	Timestamps []int64
	Values     []float64
}

// Generator renders charts for one telemetry file.
type Generator struct {
	inputPath string
	outputDir string
	format    string
}

// NewGenerator creates a generator writing charts in the given format
// ("png" for one image per series, "html" for a single static page).
func NewGenerator(inputPath, outputDir, format string) (*Generator, error) {
	if inputPath == "" {
		return nil, fmt.Errorf("input path is required")
	}
	if outputDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	switch strings.ToLower(format) {
	case "png", "html":
	default:
		return nil, fmt.Errorf("unsupported chart format: %s", format)
	}
	return &Generator{inputPath: inputPath, outputDir: outputDir, format: strings.ToLower(format)}, nil
}

// Generate parses the samples and renders every non-empty series.
func (g *Generator) Generate() error {
	samples, err := metrics.ParseFile(g.inputPath)
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		return fmt.Errorf("need at least 2 samples to generate charts, got %d", len(samples))
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	series := buildSeries(samples)
	if g.format == "html" {
		return renderHTMLPage(g.outputDir, series)
	}
	return renderPNGs(g.outputDir, series)
}

// buildSeries derives the charted series from the ordered samples: resident
// memory over time, per-interval I/O rates, and per-interval overall CPU
// utilization. Skipped intervals (resets, zero duration) leave gaps rather
// than spikes.
func buildSeries(samples []metrics.Sample) []*Series {
	rss := &Series{Name: "resident_memory", YLabel: "MB"}
	read := &Series{Name: "io_read_rate", YLabel: "bytes/sec"}
	write := &Series{Name: "io_write_rate", YLabel: "bytes/sec"}
	cpu := &Series{Name: "overall_cpu_utilization", YLabel: "percent"}

	for _, s := range samples {
		rss.Timestamps = append(rss.Timestamps, s.TimestampMs)
		rss.Values = append(rss.Values, float64(s.ResidentKB)/1024.0)
	}

	for i := 1; i < len(samples); i++ {
		prev, curr := samples[i-1], samples[i]
		elapsed := prev.ElapsedSec(curr)

		if rate, ok := analyzing.CounterRate(prev.IOReadBytes, curr.IOReadBytes, elapsed); ok {
			read.Timestamps = append(read.Timestamps, curr.TimestampMs)
			read.Values = append(read.Values, rate)
		}
		if rate, ok := analyzing.CounterRate(prev.IOWriteBytes, curr.IOWriteBytes, elapsed); ok {
			write.Timestamps = append(write.Timestamps, curr.TimestampMs)
			write.Values = append(write.Values, rate)
		}
		if pct, ok := analyzing.OverallUtilization(prev, curr); ok {
			cpu.Timestamps = append(cpu.Timestamps, curr.TimestampMs)
			cpu.Values = append(cpu.Values, pct)
		}
	}

	all := []*Series{rss, read, write, cpu}
	out := all[:0]
	for _, s := range all {
		if len(s.Values) >= 2 {
			out = append(out, s)
		}
	}
	return out
}

func formatName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
