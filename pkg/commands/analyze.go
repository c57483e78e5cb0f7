package commands

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"MetricsAnalyzer/pkg/analyzing"
	"MetricsAnalyzer/pkg/config"
	"MetricsAnalyzer/pkg/exporting"
	"MetricsAnalyzer/pkg/reporting"
)

// NewAnalyzeCmd creates the analyze subcommand.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Aliases: []string{"a"},
		Use:     "analyze <input-file-or-directory> [output-file]",
		Short:   "Summarize sampled telemetry into per-run metrics",
		Long: `Analyze one telemetry file or every telemetry file in a directory.

A single file without an output path prints a human-readable report.
With an output path, one summary row is written to it instead. For a
directory, per-file reports go to stdout and one row per run is written
to ` + config.DefaultBatchOutput + ` (or the given path). The output format
follows the file extension: csv, tsv, jsonl, parquet.

Example:
  metrics-analyzer analyze benchmark_logs/metrics-getall_100_20251123_041843.json
  metrics-analyzer analyze benchmark_logs/ results.csv`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runAnalyze,
	}

	Cfg.AddAnalyzeFlags(cmd)

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if err := Cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	input := args[0]
	output := ""
	if len(args) == 2 {
		output = args[1]
	}

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input not found: %w", err)
	}
	if info.IsDir() {
		return analyzeDirectory(input, output)
	}
	return analyzeFile(input, output)
}

func analyzeFile(path, output string) error {
	summary, err := analyzing.Analyze(path)
	if err != nil {
		return err
	}

	if output == "" {
		reporting.WriteReport(os.Stdout, summary)
		return nil
	}
	if err := writeSummaries(output, []*analyzing.RunSummary{summary}); err != nil {
		return err
	}
	log.Info().Str("output", output).Msg("summary row written")
	return nil
}

func analyzeDirectory(dir, output string) error {
	if output == "" {
		output = config.DefaultBatchOutput
	}

	log.Info().
		Str("session", uuid.NewString()).
		Str("dir", dir).
		Str("output", output).
		Msg("analyzing telemetry directory")

	summaries, err := analyzing.AnalyzeDir(dir, Cfg.Jobs)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		log.Warn().Str("dir", dir).Msg("no usable telemetry files found")
	}

	for _, s := range summaries {
		reporting.WriteReport(os.Stdout, s)
		fmt.Println()
	}

	if err := writeSummaries(output, summaries); err != nil {
		return err
	}
	log.Info().Int("runs", len(summaries)).Str("output", output).Msg("summary table written")
	return nil
}

// writeSummaries emits one row per run with the column set fixed from the
// union of cores across all runs. Write failures are fatal: a partial table
// would be misleading in cross-run comparisons.
func writeSummaries(path string, summaries []*analyzing.RunSummary) error {
	cores := analyzing.CoreUnion(summaries)
	records := make([]exporting.Record, len(summaries))
	for i, s := range summaries {
		records[i] = analyzing.SummaryRecord(s, cores)
	}
	if err := exporting.SaveRecords(path, analyzing.SummarySchema(cores), records); err != nil {
		return fmt.Errorf("failed to write summary table: %w", err)
	}
	return nil
}
