package config

import (
	"github.com/spf13/cobra"
)

// AddAnalyzeFlags adds batch analysis flags to a command.
func (c *Config) AddAnalyzeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&c.Jobs, "jobs", "j", c.Jobs, "Parallel workers in directory mode (0 = one per CPU)")
}

// AddChartFlags adds chart generation flags to a command.
func (c *Config) AddChartFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&c.ChartFormat, "chart-format", c.ChartFormat, "Chart format (png, html)")
	flags.StringVarP(&c.ChartOutput, "output", "o", c.ChartOutput, "Chart output directory (auto-generated if empty)")
}
