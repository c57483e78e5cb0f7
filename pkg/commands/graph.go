package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"MetricsAnalyzer/pkg/graphing"
)

// NewGraphCmd creates the graph subcommand.
func NewGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Aliases: []string{"g"},
		Use:     "graph <samples-file>",
		Short:   "Render offline charts from telemetry samples",
		Long: `Render charts of resident memory, per-interval I/O rates, and overall
CPU utilization from one telemetry file.

Output is a directory of PNG files, or a single static HTML page with
--chart-format html.

Example:
  metrics-analyzer graph benchmark_logs/metrics-getall_100_20251123_041843.json
  metrics-analyzer graph metrics.json --chart-format html -o ./charts`,
		Args: cobra.ExactArgs(1),
		RunE: runGraph,
	}

	Cfg.AddChartFlags(cmd)

	return cmd
}

func runGraph(cmd *cobra.Command, args []string) error {
	if err := Cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	input := args[0]
	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("input file not found: %s", input)
	}

	outputDir := Cfg.ChartOutput
	if outputDir == "" {
		outputDir = strings.TrimSuffix(input, filepath.Ext(input)) + "_charts"
	}

	gen, err := graphing.NewGenerator(input, outputDir, Cfg.ChartFormat)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}
	if err := gen.Generate(); err != nil {
		return fmt.Errorf("failed to generate charts: %w", err)
	}
	fmt.Printf("Generated charts in: %s\n", outputDir)
	return nil
}
