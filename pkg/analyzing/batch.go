package analyzing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"MetricsAnalyzer/pkg/metrics"
)

// AnalyzeDir analyzes every telemetry file directly under dir (non-recursive)
// and returns one summary per usable file, ordered lexically by file name
// regardless of scheduling. Files that fail to parse are logged and excluded;
// the batch continues. jobs bounds the parallel fan-out, 0 meaning one worker
// per CPU.
func AnalyzeDir(dir string, jobs int) ([]*RunSummary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".jsonl":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	// Each file's analysis is a pure function of its contents, so the fan-out
	// shares nothing; results land in their lexical slot.
	results := make([]*RunSummary, len(names))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			summary, err := Analyze(filepath.Join(dir, name))
			if err != nil {
				var malformed *metrics.MalformedInputError
				if errors.As(err, &malformed) {
					log.Warn().Str("file", name).Err(err).Msg("skipping unusable telemetry file")
					return nil
				}
				return err
			}
			results[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := results[:0]
	for _, s := range results {
		if s != nil {
			summaries = append(summaries, s)
		}
	}
	return summaries, nil
}

// CoreUnion returns the sorted union of core indices across summaries. The
// summary table's column set is fixed from this union before any row is
// written, so cores missing from one run render as empty cells instead of
// shifting columns.
func CoreUnion(summaries []*RunSummary) []int {
	seen := make(map[int]struct{})
	for _, s := range summaries {
		for id := range s.CPU.Cores {
			seen[id] = struct{}{}
		}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
