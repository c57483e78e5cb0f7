// Package commands provides CLI command implementations.
package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"MetricsAnalyzer/pkg/config"
)

// Cfg is the shared configuration instance.
var Cfg = config.New()

// NewRootCmd creates the root command with all subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "metrics-analyzer",
		Short: "Benchmark telemetry analyzer",
		Long: `metrics-analyzer turns sampled resource-usage telemetry captured during
benchmark runs into per-run performance summaries: disk I/O throughput,
peak memory, and per-core CPU utilization.

Commands:
  analyze    Summarize one telemetry file or a directory of runs
  graph      Render offline charts from one telemetry file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if Cfg.Verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		},
	}

	root.PersistentFlags().BoolVarP(&Cfg.Verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		NewAnalyzeCmd(),
		NewGraphCmd(),
	)

	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
