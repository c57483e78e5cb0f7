package reporting

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"MetricsAnalyzer/pkg/analyzing"
)

// WriteReport renders one run's summary as a human-readable report.
func WriteReport(w io.Writer, s *analyzing.RunSummary) {
	fmt.Fprintf(w, "=== System Performance Metrics ===\n\n")
	fmt.Fprintf(w, "File: %s\n", s.FileName)
	if s.Identity.Workload != "" || s.Identity.ClientCount > 0 {
		fmt.Fprintf(w, "Run:  workload=%s clients=%d timestamp=%s\n",
			s.Identity.Workload, s.Identity.ClientCount, s.Identity.Timestamp)
	}
	fmt.Fprintf(w, "Samples: %d\n\n", s.SampleCount)

	fmt.Fprintf(w, "IO Performance:\n")
	fmt.Fprintf(w, "  Average Read Speed:  %s\n", FormatBytesPerSec(s.ReadBytesPerSec))
	fmt.Fprintf(w, "  Average Write Speed: %s\n\n", FormatBytesPerSec(s.WriteBytesPerSec))

	fmt.Fprintf(w, "Memory Usage:\n")
	fmt.Fprintf(w, "  Maximum RAM Used: %.2f MB (%.2f GB)\n", s.MaxRAMMB(), s.MaxRAMGB())
	fmt.Fprintf(w, "  Max Minor Faults: %d\n", s.MaxMinorFaults)
	fmt.Fprintf(w, "  Max Major Faults: %d\n\n", s.MaxMajorFaults)

	fmt.Fprintf(w, "CPU Utilization:\n")
	writeCPUTable(w, s.CPU)
}

func writeCPUTable(w io.Writer, cpu analyzing.CPUStats) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Core", "Mean %", "Geomean %"})
	table.SetAutoFormatHeaders(false)

	table.Append([]string{"overall", formatPercent(cpu.Overall.Mean, cpu.Overall.Samples), formatGeoMean(cpu.Overall.GeoMean)})
	for _, id := range cpu.CoreIDs() {
		core := cpu.Cores[id]
		table.Append([]string{
			fmt.Sprintf("cpu%d", id),
			formatPercent(core.Mean, core.Samples),
			formatGeoMean(core.GeoMean),
		})
	}
	table.Render()
}

func formatPercent(pct float64, samples int) string {
	if samples == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", pct)
}

func formatGeoMean(g analyzing.GeoMean) string {
	if !g.Valid {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", g.Value)
}
