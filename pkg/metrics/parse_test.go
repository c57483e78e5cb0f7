package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleObject = `{
	"ts_ms": 1000, "pid": 42,
	"io_read_bytes_total": 100, "io_write_bytes_total": 200,
	"rss_kb_total": 2048,
	"per_cpu_jiffies": {"0": {"busy": 10, "idle": 90}, "1": {"busy": 5, "idle": 95}},
	"minor_faults_total": 7, "major_faults_total": 1,
	"context_switches_total": 33
}`

func TestParseSamples_Array(t *testing.T) {
	samples, err := parseSamples("test.json", []byte("["+sampleObject+"]"))
	if err != nil {
		t.Fatalf("parseSamples: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("len(samples) = %d; want 1", len(samples))
	}

	s := samples[0]
	if s.TimestampMs != 1000 {
		t.Errorf("TimestampMs = %d; want 1000", s.TimestampMs)
	}
	if s.PID != 42 {
		t.Errorf("PID = %d; want 42", s.PID)
	}
	if s.IOReadBytes != 100 || s.IOWriteBytes != 200 {
		t.Errorf("IO bytes = %d/%d; want 100/200", s.IOReadBytes, s.IOWriteBytes)
	}
	if s.ResidentKB != 2048 {
		t.Errorf("ResidentKB = %d; want 2048", s.ResidentKB)
	}
	if len(s.PerCoreJiffies) != 2 {
		t.Fatalf("len(PerCoreJiffies) = %d; want 2", len(s.PerCoreJiffies))
	}
	if got := s.PerCoreJiffies[0]; got.Busy != 10 || got.Idle != 90 {
		t.Errorf("core 0 = %+v; want busy=10 idle=90", got)
	}
	if s.MinorFaults != 7 || s.MajorFaults != 1 {
		t.Errorf("faults = %d/%d; want 7/1", s.MinorFaults, s.MajorFaults)
	}
	if s.ContextSwitches != 33 {
		t.Errorf("ContextSwitches = %d; want 33", s.ContextSwitches)
	}
}

func TestParseSamples_JSONLines(t *testing.T) {
	data := `{"ts_ms": 2000, "pid": 1, "io_read_bytes_total": 0, "io_write_bytes_total": 0}
{"ts_ms": 1000, "pid": 1, "io_read_bytes_total": 0, "io_write_bytes_total": 0}

{"ts_ms": 3000, "pid": 1, "io_read_bytes_total": 0, "io_write_bytes_total": 0}`

	samples, err := parseSamples("test.jsonl", []byte(data))
	if err != nil {
		t.Fatalf("parseSamples: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("len(samples) = %d; want 3", len(samples))
	}
	// Sorted by timestamp regardless of file order.
	for i, want := range []int64{1000, 2000, 3000} {
		if samples[i].TimestampMs != want {
			t.Errorf("samples[%d].TimestampMs = %d; want %d", i, samples[i].TimestampMs, want)
		}
	}
}

func TestParseSamples_Empty(t *testing.T) {
	for _, data := range []string{"", "   \n", "[]"} {
		samples, err := parseSamples("test.json", []byte(data))
		if err != nil {
			t.Errorf("parseSamples(%q): %v", data, err)
		}
		if len(samples) != 0 {
			t.Errorf("parseSamples(%q) = %d samples; want 0", data, len(samples))
		}
	}
}

func TestParseSamples_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no ts_ms", `[{"pid": 1, "io_read_bytes_total": 0, "io_write_bytes_total": 0}]`},
		{"no pid", `[{"ts_ms": 1000, "io_read_bytes_total": 0, "io_write_bytes_total": 0}]`},
		{"no counter group", `[{"ts_ms": 1000, "pid": 1, "rss_kb_total": 5}]`},
		{"invalid json", `[{"ts_ms": }]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSamples("bad.json", []byte(tt.data))
			var malformed *MalformedInputError
			if !errors.As(err, &malformed) {
				t.Fatalf("err = %v; want *MalformedInputError", err)
			}
			if malformed.File != "bad.json" {
				t.Errorf("File = %q; want bad.json", malformed.File)
			}
		})
	}
}

func TestParseSamples_FirstOffendingEntry(t *testing.T) {
	data := `[
		{"ts_ms": 1000, "pid": 1, "io_read_bytes_total": 0, "io_write_bytes_total": 0},
		{"pid": 1, "io_read_bytes_total": 0, "io_write_bytes_total": 0}
	]`
	_, err := parseSamples("bad.json", []byte(data))
	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v; want *MalformedInputError", err)
	}
	if malformed.Index != 1 {
		t.Errorf("Index = %d; want 1", malformed.Index)
	}
}

func TestParseSamples_UnknownFieldsIgnored(t *testing.T) {
	data := `[{"ts_ms": 1000, "pid": 1, "io_read_bytes_total": 5, "io_write_bytes_total": 5,
		"cycles_total": 123, "some_future_field": "x"}]`
	samples, err := parseSamples("test.json", []byte(data))
	if err != nil {
		t.Fatalf("parseSamples: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("len(samples) = %d; want 1", len(samples))
	}
}

func TestParseSamples_CPUPrefixedCoreKeys(t *testing.T) {
	data := `[{"ts_ms": 1000, "pid": 1,
		"per_cpu_jiffies": {"cpu0": {"busy": 1, "idle": 2}, "cpu": {"busy": 9, "idle": 9}, "3": {"busy": 4, "idle": 5}}}]`
	samples, err := parseSamples("test.json", []byte(data))
	if err != nil {
		t.Fatalf("parseSamples: %v", err)
	}
	pc := samples[0].PerCoreJiffies
	if len(pc) != 2 {
		t.Fatalf("len(PerCoreJiffies) = %d; want 2 (aggregate cpu key dropped)", len(pc))
	}
	if pc[0].Busy != 1 || pc[3].Busy != 4 {
		t.Errorf("PerCoreJiffies = %+v; want cores 0 and 3", pc)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metrics-getall_1_x.json")
	if err := os.WriteFile(path, []byte("["+sampleObject+"]"), 0644); err != nil {
		t.Fatal(err)
	}

	samples, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("len(samples) = %d; want 1", len(samples))
	}
}
