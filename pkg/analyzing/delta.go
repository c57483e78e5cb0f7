// Package analyzing derives per-run statistics from ordered telemetry samples.
package analyzing

// CounterDelta returns the increase of a cumulative counter across one
// interval. ok is false when the interval must be skipped: a non-positive
// elapsed time (duplicate or out-of-order timestamps) or a later reading
// below the earlier one (counter reset on process restart, or wraparound).
// Skipped intervals contribute nothing to any aggregate.
//
// Every counter family (I/O bytes, jiffies, fault counts) goes through this
// single primitive so reset handling cannot diverge between metrics.
func CounterDelta(earlier, later int64, elapsedSec float64) (delta int64, ok bool) {
	if elapsedSec <= 0 {
		return 0, false
	}
	if later < earlier {
		return 0, false
	}
	return later - earlier, true
}

// CounterRate returns the per-second rate of a cumulative counter across one
// interval, under the same skip rules as CounterDelta.
func CounterRate(earlier, later int64, elapsedSec float64) (rate float64, ok bool) {
	delta, ok := CounterDelta(earlier, later, elapsedSec)
	if !ok {
		return 0, false
	}
	return float64(delta) / elapsedSec, true
}
