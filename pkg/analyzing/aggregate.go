package analyzing

import (
	"MetricsAnalyzer/pkg/metrics"
)

// RunSummary is one row of derived statistics for a run. It is built once per
// file and never mutated afterwards.
type RunSummary struct {
	FileName string
	Identity metrics.RunIdentity

	SampleCount int

	ReadBytesPerSec  float64
	WriteBytesPerSec float64

	MaxRAMKB           int64
	MaxMinorFaults     int64
	MaxMajorFaults     int64
	MaxContextSwitches int64

	CPU CPUStats
}

// MaxRAMMB returns the peak resident memory in megabytes.
func (s *RunSummary) MaxRAMMB() float64 { return float64(s.MaxRAMKB) / 1024.0 }

// MaxRAMGB returns the peak resident memory in gigabytes.
func (s *RunSummary) MaxRAMGB() float64 { return float64(s.MaxRAMKB) / (1024.0 * 1024.0) }

// Aggregate derives a run's statistics from its ordered samples. Zero or one
// sample is a degenerate run: rates and utilization stay zero, peaks reflect
// whatever samples exist.
func Aggregate(samples []metrics.Sample) *RunSummary {
	s := &RunSummary{
		SampleCount: len(samples),
		CPU:         CalculateCPU(samples),
	}

	for _, sm := range samples {
		if sm.ResidentKB > s.MaxRAMKB {
			s.MaxRAMKB = sm.ResidentKB
		}
		// Cumulative counters are monotone absent a reset, so the running max
		// equals the final value under normal operation and stays sane when a
		// restart drops the counter.
		if sm.MinorFaults > s.MaxMinorFaults {
			s.MaxMinorFaults = sm.MinorFaults
		}
		if sm.MajorFaults > s.MaxMajorFaults {
			s.MaxMajorFaults = sm.MajorFaults
		}
		if sm.ContextSwitches > s.MaxContextSwitches {
			s.MaxContextSwitches = sm.ContextSwitches
		}
	}

	if len(samples) >= 2 {
		first, last := samples[0], samples[len(samples)-1]
		elapsed := first.ElapsedSec(last)

		// Whole-run throughput from the first and last counters only, through
		// the shared delta engine: a reset anywhere in the run that leaves the
		// final counter below the initial one reports 0, never a negative.
		if rate, ok := CounterRate(first.IOReadBytes, last.IOReadBytes, elapsed); ok {
			s.ReadBytesPerSec = rate
		}
		if rate, ok := CounterRate(first.IOWriteBytes, last.IOWriteBytes, elapsed); ok {
			s.WriteBytesPerSec = rate
		}
	}

	return s
}
