package metrics

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// wireSample mirrors the profiler's on-disk sample schema. Required fields
// are pointers so a missing key can be told apart from a zero value; unknown
// keys are ignored for forward compatibility.
type wireSample struct {
	TsMs            *int64                 `json:"ts_ms"`
	PID             *int64                 `json:"pid"`
	IOReadBytes     *int64                 `json:"io_read_bytes_total"`
	IOWriteBytes    *int64                 `json:"io_write_bytes_total"`
	RSSKB           int64                  `json:"rss_kb_total"`
	PerCPUJiffies   map[string]CoreJiffies `json:"per_cpu_jiffies"`
	MinorFaults     *int64                 `json:"minor_faults_total"`
	MajorFaults     *int64                 `json:"major_faults_total"`
	ContextSwitches int64                  `json:"context_switches_total"`
}

// ParseFile decodes one telemetry file into an ordered sequence of samples.
// Both container layouts produced by the profiler are accepted: a top-level
// JSON array, and JSON Lines with one object per line. The returned samples
// are stably sorted by timestamp. An empty file yields zero samples; a file
// with unparseable JSON or an entry missing required fields fails as a whole
// with a *MalformedInputError.
func ParseFile(path string) ([]Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}
	return parseSamples(path, data)
}

func parseSamples(path string, data []byte) ([]Sample, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var entries []json.RawMessage
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, &MalformedInputError{File: path, Index: -1, Err: err}
		}
	} else {
		for _, line := range bytes.Split(trimmed, []byte{'\n'}) {
			line = bytes.TrimSpace(line)
			if len(line) == 0 {
				continue
			}
			entries = append(entries, json.RawMessage(line))
		}
	}

	samples := make([]Sample, 0, len(entries))
	for i, raw := range entries {
		var w wireSample
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, &MalformedInputError{File: path, Index: i, Err: err}
		}
		s, err := w.toSample()
		if err != nil {
			return nil, &MalformedInputError{File: path, Index: i, Err: err}
		}
		samples = append(samples, s)
	}

	// Stable so ties keep file order; downstream treats equal timestamps as
	// zero-duration intervals and skips them.
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].TimestampMs < samples[j].TimestampMs
	})
	return samples, nil
}

func (w *wireSample) toSample() (Sample, error) {
	if w.TsMs == nil {
		return Sample{}, errors.New("missing required field ts_ms")
	}
	if w.PID == nil {
		return Sample{}, errors.New("missing required field pid")
	}

	hasIO := w.IOReadBytes != nil && w.IOWriteBytes != nil
	hasJiffies := w.PerCPUJiffies != nil
	hasFaults := w.MinorFaults != nil && w.MajorFaults != nil
	if !hasIO && !hasJiffies && !hasFaults {
		return Sample{}, errors.New("no counter group present (io bytes, per_cpu_jiffies, faults)")
	}

	s := Sample{
		TimestampMs:     *w.TsMs,
		PID:             *w.PID,
		ResidentKB:      w.RSSKB,
		ContextSwitches: w.ContextSwitches,
	}
	if hasIO {
		s.IOReadBytes = *w.IOReadBytes
		s.IOWriteBytes = *w.IOWriteBytes
	}
	if w.MinorFaults != nil {
		s.MinorFaults = *w.MinorFaults
	}
	if w.MajorFaults != nil {
		s.MajorFaults = *w.MajorFaults
	}
	if hasJiffies {
		s.PerCoreJiffies = make(map[int]CoreJiffies, len(w.PerCPUJiffies))
		for key, cj := range w.PerCPUJiffies {
			id, ok := parseCoreID(key)
			if !ok {
				// Aggregate or vendor-specific keys; the overall pseudo-core
				// is derived by summing, never read from the input.
				continue
			}
			s.PerCoreJiffies[id] = cj
		}
	}
	return s, nil
}

// parseCoreID accepts both bare indices ("3") and /proc/stat style names
// ("cpu3"). The bare "cpu" aggregate line carries no index and is skipped.
func parseCoreID(key string) (int, bool) {
	key = strings.TrimPrefix(key, "cpu")
	if key == "" {
		return 0, false
	}
	id, err := strconv.Atoi(key)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
