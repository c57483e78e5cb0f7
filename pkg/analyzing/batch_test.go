package analyzing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MetricsAnalyzer/pkg/metrics"
)

const (
	goodRunA = `[
		{"ts_ms": 0, "pid": 1, "io_read_bytes_total": 0, "io_write_bytes_total": 0, "rss_kb_total": 1024,
		 "per_cpu_jiffies": {"0": {"busy": 0, "idle": 0}}},
		{"ts_ms": 1000, "pid": 1, "io_read_bytes_total": 0, "io_write_bytes_total": 10485760, "rss_kb_total": 2048,
		 "per_cpu_jiffies": {"0": {"busy": 90, "idle": 10}}}
	]`
	goodRunB = `[
		{"ts_ms": 0, "pid": 2, "io_read_bytes_total": 0, "io_write_bytes_total": 0, "rss_kb_total": 512,
		 "per_cpu_jiffies": {"1": {"busy": 0, "idle": 0}}},
		{"ts_ms": 2000, "pid": 2, "io_read_bytes_total": 4096, "io_write_bytes_total": 0, "rss_kb_total": 512,
		 "per_cpu_jiffies": {"1": {"busy": 50, "idle": 150}}}
	]`
)

func writeRun(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestAnalyzeDir(t *testing.T) {
	dir := t.TempDir()
	writeRun(t, dir, "metrics-putall_8_20251123.json", goodRunB)
	writeRun(t, dir, "metrics-getall_100_20251123.json", goodRunA)
	writeRun(t, dir, "metrics-broken_1_20251123.json", `[{"pid": 3}]`)
	writeRun(t, dir, "notes.txt", "not telemetry")

	summaries, err := AnalyzeDir(dir, 2)
	require.NoError(t, err)
	require.Len(t, summaries, 2, "malformed file excluded, txt ignored")

	// Lexical file-name order regardless of worker scheduling.
	assert.Equal(t, "metrics-getall_100_20251123.json", summaries[0].FileName)
	assert.Equal(t, "metrics-putall_8_20251123.json", summaries[1].FileName)

	getall := summaries[0]
	assert.Equal(t, "getall", getall.Identity.Workload)
	assert.Equal(t, 100, getall.Identity.ClientCount)
	assert.Equal(t, float64(10_485_760), getall.WriteBytesPerSec)
	assert.Equal(t, int64(2048), getall.MaxRAMKB)
	assert.InDelta(t, 90, getall.CPU.Cores[0].Mean, 1e-9)

	putall := summaries[1]
	assert.Equal(t, float64(2048), putall.ReadBytesPerSec)
	assert.InDelta(t, 25, putall.CPU.Cores[1].Mean, 1e-9)

	// The union spans both runs even though each saw a single core.
	assert.Equal(t, []int{0, 1}, CoreUnion(summaries))
}

func TestAnalyzeDir_Sequential(t *testing.T) {
	dir := t.TempDir()
	writeRun(t, dir, "metrics-getall_1_a.json", goodRunA)

	summaries, err := AnalyzeDir(dir, 1)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
}

func TestAnalyzeDir_Empty(t *testing.T) {
	summaries, err := AnalyzeDir(t.TempDir(), 0)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestAnalyzeDir_Missing(t *testing.T) {
	_, err := AnalyzeDir(filepath.Join(t.TempDir(), "nope"), 0)
	assert.Error(t, err)
}

func TestAnalyze_SingleFile(t *testing.T) {
	dir := t.TempDir()
	writeRun(t, dir, "metrics-getall_100_20251123_041843.json", goodRunA)

	summary, err := Analyze(filepath.Join(dir, "metrics-getall_100_20251123_041843.json"))
	require.NoError(t, err)
	assert.Equal(t, "getall", summary.Identity.Workload)
	assert.Equal(t, "20251123_041843", summary.Identity.Timestamp)
	assert.Equal(t, 2, summary.SampleCount)
}

func TestAnalyze_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeRun(t, dir, "metrics-bad_1_x.json", `{"pid": 1}`)

	_, err := Analyze(filepath.Join(dir, "metrics-bad_1_x.json"))
	var malformed *metrics.MalformedInputError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 0, malformed.Index)
}
