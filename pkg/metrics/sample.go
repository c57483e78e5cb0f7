// Package metrics defines the sampled telemetry model consumed by the analyzer.
package metrics

// CoreJiffies holds the cumulative busy and idle jiffy counters for one core.
type CoreJiffies struct {
	Busy int64 `json:"busy"`
	Idle int64 `json:"idle"`
}

// Sample is one sampled snapshot of the monitored process. All *_Total fields
// are cumulative counters that only decrease on a process restart or counter
// wraparound; ResidentKB is instantaneous.
type Sample struct {
	TimestampMs     int64
	PID             int64
	IOReadBytes     int64
	IOWriteBytes    int64
	ResidentKB      int64
	PerCoreJiffies  map[int]CoreJiffies
	MinorFaults     int64
	MajorFaults     int64
	ContextSwitches int64
}

// ElapsedSec returns the elapsed time in seconds from s to later. Negative
// when later precedes s.
func (s Sample) ElapsedSec(later Sample) float64 {
	return float64(later.TimestampMs-s.TimestampMs) / 1000.0
}
