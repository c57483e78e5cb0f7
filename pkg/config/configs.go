// Package config provides configuration for the analyzer commands.
package config

import "fmt"

// Config holds all command options.
type Config struct {
	// Analysis settings
	Jobs int

	// Chart settings
	ChartFormat string
	ChartOutput string

	// Logging
	Verbose bool
}

// Default configuration values.
const (
	DefaultBatchOutput = "benchmark_metrics.csv"
	DefaultChartFormat = "png"
)

// New creates a Config with default values.
func New() *Config {
	return &Config{
		ChartFormat: DefaultChartFormat,
	}
}

// Validate checks the configuration for invalid combinations.
func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 0, got %d", c.Jobs)
	}
	switch c.ChartFormat {
	case "png", "html":
	default:
		return fmt.Errorf("unsupported chart format: %s (png, html)", c.ChartFormat)
	}
	return nil
}
