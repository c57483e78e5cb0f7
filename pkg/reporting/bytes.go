// Package reporting renders run summaries in human-readable form.
package reporting

import "fmt"

var speedUnits = []string{"B/s", "KB/s", "MB/s", "GB/s"}

// FormatBytesPerSec renders a byte rate with automatic 1024-step unit
// scaling: 10485760 becomes "10.00 MB/s".
func FormatBytesPerSec(bytesPerSec float64) string {
	value := bytesPerSec
	unit := 0
	for value >= 1024 && unit < len(speedUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, speedUnits[unit])
}
