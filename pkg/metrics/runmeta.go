package metrics

import (
	"path/filepath"
	"strconv"
	"strings"
)

const runNamePrefix = "metrics"

// RunIdentity is the metadata carried by a telemetry file's name.
type RunIdentity struct {
	Workload    string
	ClientCount int
	Timestamp   string
}

// ParseRunName extracts workload, client count and run timestamp from a file
// named metrics-{WORKLOAD}_{CLIENTS}_{TIMESTAMP}.<ext>; both underscore- and
// hyphen-delimited variants are produced by the profiler and accepted here.
// Parsing is best effort and never fails: fields that cannot be found default
// to the zero value and the file is still analyzed without labels.
func ParseRunName(name string) RunIdentity {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	if !strings.HasPrefix(base, runNamePrefix) {
		return RunIdentity{}
	}
	rest := strings.TrimLeft(strings.TrimPrefix(base, runNamePrefix), "-_")
	if rest == "" {
		return RunIdentity{}
	}

	parts := strings.FieldsFunc(rest, func(r rune) bool {
		return r == '_' || r == '-'
	})

	// Workload is everything before the first purely numeric group, clients
	// is that group, timestamp is whatever remains.
	for i, p := range parts {
		if !isDigits(p) {
			continue
		}
		id := RunIdentity{
			Workload:  strings.Join(parts[:i], "_"),
			Timestamp: strings.Join(parts[i+1:], "_"),
		}
		if n, err := strconv.Atoi(p); err == nil {
			id.ClientCount = n
		}
		return id
	}

	return RunIdentity{Workload: strings.Join(parts, "_")}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
