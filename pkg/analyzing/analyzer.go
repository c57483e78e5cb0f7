package analyzing

import (
	"path/filepath"

	"MetricsAnalyzer/pkg/metrics"
)

// Analyze runs the full single-file pipeline: parse the telemetry file,
// aggregate its samples, and label the summary with the metadata carried by
// the file name. The returned error is a *metrics.MalformedInputError when
// the file's contents are unusable.
func Analyze(path string) (*RunSummary, error) {
	samples, err := metrics.ParseFile(path)
	if err != nil {
		return nil, err
	}

	summary := Aggregate(samples)
	summary.FileName = filepath.Base(path)
	summary.Identity = metrics.ParseRunName(summary.FileName)
	return summary, nil
}
