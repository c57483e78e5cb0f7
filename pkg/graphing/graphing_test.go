package graphing

import (
	"testing"

	"MetricsAnalyzer/pkg/metrics"
)

func testSamples() []metrics.Sample {
	samples := make([]metrics.Sample, 4)
	for i := range samples {
		samples[i] = metrics.Sample{
			TimestampMs:  int64(i) * 1000,
			ResidentKB:   int64(1024 * (i + 1)),
			IOReadBytes:  int64(i) * 100,
			IOWriteBytes: int64(i) * 200,
			PerCoreJiffies: map[int]metrics.CoreJiffies{
				0: {Busy: int64(i) * 50, Idle: int64(i) * 50},
			},
		}
	}
	return samples
}

func TestBuildSeries(t *testing.T) {
	series := buildSeries(testSamples())

	byName := make(map[string]*Series, len(series))
	for _, s := range series {
		byName[s.Name] = s
	}

	rss, ok := byName["resident_memory"]
	if !ok {
		t.Fatal("missing resident_memory series")
	}
	if len(rss.Values) != 4 {
		t.Errorf("rss points = %d; want 4", len(rss.Values))
	}
	if rss.Values[0] != 1.0 {
		t.Errorf("rss[0] = %v MB; want 1", rss.Values[0])
	}

	read, ok := byName["io_read_rate"]
	if !ok {
		t.Fatal("missing io_read_rate series")
	}
	if len(read.Values) != 3 {
		t.Errorf("read rate points = %d; want 3 intervals", len(read.Values))
	}
	if read.Values[0] != 100 {
		t.Errorf("read rate[0] = %v; want 100", read.Values[0])
	}

	cpu, ok := byName["overall_cpu_utilization"]
	if !ok {
		t.Fatal("missing overall_cpu_utilization series")
	}
	for i, v := range cpu.Values {
		if v != 50 {
			t.Errorf("cpu[%d] = %v; want 50", i, v)
		}
	}
}

func TestBuildSeries_SkipsResetIntervals(t *testing.T) {
	samples := testSamples()
	// Write counter resets mid-run; that interval leaves a gap.
	samples[2].IOWriteBytes = 0

	byName := make(map[string]*Series)
	for _, s := range buildSeries(samples) {
		byName[s.Name] = s
	}

	write := byName["io_write_rate"]
	if write == nil {
		t.Fatal("missing io_write_rate series")
	}
	if len(write.Values) != 2 {
		t.Errorf("write rate points = %d; want 2 (reset interval skipped)", len(write.Values))
	}
	for _, v := range write.Values {
		if v < 0 {
			t.Errorf("negative rate %v after reset", v)
		}
	}
}

func TestNewGenerator_Validation(t *testing.T) {
	if _, err := NewGenerator("", "out", "png"); err == nil {
		t.Error("want error for empty input path")
	}
	if _, err := NewGenerator("in.json", "", "png"); err == nil {
		t.Error("want error for empty output dir")
	}
	if _, err := NewGenerator("in.json", "out", "svg"); err == nil {
		t.Error("want error for unsupported format")
	}
}
