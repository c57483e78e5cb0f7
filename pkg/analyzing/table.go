package analyzing

import (
	"fmt"

	"MetricsAnalyzer/pkg/exporting"
)

// Fixed base columns of the summary table. Per-core utilization columns
// (cpu{N}_percent, cpu{N}_geomean_percent) follow, one pair per distinct core
// index observed across the whole batch.
var baseColumns = []string{
	"file_name",
	"workload",
	"num_clients",
	"timestamp",
	"io_read_speed_bytes_per_sec",
	"io_write_speed_bytes_per_sec",
	"max_ram_mb",
	"max_ram_gb",
	"max_minor_faults",
	"max_major_faults",
	"overall_cpu_percent",
	"overall_cpu_geomean_percent",
}

// SummarySchema builds the ordered column set for the given core union.
func SummarySchema(cores []int) *exporting.Schema {
	columns := make([]string, 0, len(baseColumns)+2*len(cores))
	columns = append(columns, baseColumns...)
	for _, id := range cores {
		columns = append(columns,
			fmt.Sprintf("cpu%d_percent", id),
			fmt.Sprintf("cpu%d_geomean_percent", id),
		)
	}
	return exporting.NewSchema(columns)
}

// SummaryRecord flattens one run summary into a row keyed by the schema
// columns. Cores absent from this run, and undefined geometric means, are
// left out of the record so writers render them as empty cells rather than a
// fake zero.
func SummaryRecord(s *RunSummary, cores []int) exporting.Record {
	r := exporting.Record{
		"file_name":                    s.FileName,
		"workload":                     s.Identity.Workload,
		"num_clients":                  int64(s.Identity.ClientCount),
		"timestamp":                    s.Identity.Timestamp,
		"io_read_speed_bytes_per_sec":  s.ReadBytesPerSec,
		"io_write_speed_bytes_per_sec": s.WriteBytesPerSec,
		"max_ram_mb":                   s.MaxRAMMB(),
		"max_ram_gb":                   s.MaxRAMGB(),
		"max_minor_faults":             s.MaxMinorFaults,
		"max_major_faults":             s.MaxMajorFaults,
		"overall_cpu_percent":          s.CPU.Overall.Mean,
	}
	if s.CPU.Overall.GeoMean.Valid {
		r["overall_cpu_geomean_percent"] = s.CPU.Overall.GeoMean.Value
	}
	for _, id := range cores {
		core, ok := s.CPU.Cores[id]
		if !ok {
			continue
		}
		r[fmt.Sprintf("cpu%d_percent", id)] = core.Mean
		if core.GeoMean.Valid {
			r[fmt.Sprintf("cpu%d_geomean_percent", id)] = core.GeoMean.Value
		}
	}
	return r
}
