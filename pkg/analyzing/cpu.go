package analyzing

import (
	"math"
	"sort"

	"MetricsAnalyzer/pkg/metrics"
)

// GeoMean is a geometric mean that may be undefined: when every utilization
// value in a run was non-positive there is nothing to take a logarithm of,
// and Valid is false. This keeps an unavailable mean distinguishable from a
// true 0% run.
type GeoMean struct {
	Value float64
	Valid bool
}

// CoreStats aggregates the instantaneous utilization percentages of one core
// across a run.
type CoreStats struct {
	Samples int
	Mean    float64
	GeoMean GeoMean
}

// CPUStats holds per-core utilization aggregates plus the "overall"
// pseudo-core built from busy and idle jiffies summed across all cores.
type CPUStats struct {
	Overall CoreStats
	Cores   map[int]CoreStats
}

// CoreIDs returns the observed core indices in ascending order.
func (c CPUStats) CoreIDs() []int {
	ids := make([]int, 0, len(c.Cores))
	for id := range c.Cores {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// utilizationAcc accumulates utilization percentages for one core. The
// geometric mean is carried as a log sum; non-positive percentages cannot be
// logged and stay out of that sum while still counting toward the arithmetic
// mean.
type utilizationAcc struct {
	sum    float64
	n      int
	logSum float64
	logN   int
}

func (a *utilizationAcc) add(pct float64) {
	a.sum += pct
	a.n++
	if pct > 0 {
		a.logSum += math.Log(pct)
		a.logN++
	}
}

func (a *utilizationAcc) stats() CoreStats {
	s := CoreStats{Samples: a.n}
	if a.n > 0 {
		s.Mean = a.sum / float64(a.n)
	}
	if a.logN > 0 {
		s.GeoMean = GeoMean{Value: math.Exp(a.logSum / float64(a.logN)), Valid: true}
	}
	return s
}

// CalculateCPU turns the jiffy counters of an ordered sample sequence into
// per-core and overall utilization aggregates. Every core index observed
// anywhere in the input gets an entry, even when no usable interval exists
// for it; a run with fewer than two samples yields zero-valued stats rather
// than an error.
func CalculateCPU(samples []metrics.Sample) CPUStats {
	accs := make(map[int]*utilizationAcc)
	for _, s := range samples {
		for id := range s.PerCoreJiffies {
			if accs[id] == nil {
				accs[id] = &utilizationAcc{}
			}
		}
	}
	overall := &utilizationAcc{}

	for i := 1; i < len(samples); i++ {
		prev, curr := samples[i-1], samples[i]
		elapsed := prev.ElapsedSec(curr)

		for id, cj := range curr.PerCoreJiffies {
			pj, ok := prev.PerCoreJiffies[id]
			if !ok {
				continue
			}
			if pct, ok := coreUtilization(pj, cj, elapsed); ok {
				accs[id].add(pct)
			}
		}
		if pct, ok := OverallUtilization(prev, curr); ok {
			overall.add(pct)
		}
	}

	stats := CPUStats{Overall: overall.stats(), Cores: make(map[int]CoreStats, len(accs))}
	for id, acc := range accs {
		stats.Cores[id] = acc.stats()
	}
	return stats
}

// OverallUtilization computes the instantaneous utilization percentage of the
// "overall" pseudo-core for one sample pair: busy and idle jiffies are summed
// across all cores present in both samples before going through the shared
// delta engine, so a restart that drops the summed counters skips the pair.
func OverallUtilization(prev, curr metrics.Sample) (float64, bool) {
	var prevSum, currSum metrics.CoreJiffies
	summed := 0
	for id, cj := range curr.PerCoreJiffies {
		pj, ok := prev.PerCoreJiffies[id]
		if !ok {
			continue
		}
		prevSum.Busy += pj.Busy
		prevSum.Idle += pj.Idle
		currSum.Busy += cj.Busy
		currSum.Idle += cj.Idle
		summed++
	}
	if summed == 0 {
		return 0, false
	}
	return coreUtilization(prevSum, currSum, prev.ElapsedSec(curr))
}

// coreUtilization computes the instantaneous utilization percentage for one
// sample pair: 100 * busy / (busy + idle). The pair is skipped when either
// counter reset, the interval has no duration, or no jiffies elapsed at all.
func coreUtilization(prev, curr metrics.CoreJiffies, elapsedSec float64) (float64, bool) {
	busy, ok := CounterDelta(prev.Busy, curr.Busy, elapsedSec)
	if !ok {
		return 0, false
	}
	idle, ok := CounterDelta(prev.Idle, curr.Idle, elapsedSec)
	if !ok {
		return 0, false
	}
	total := busy + idle
	if total == 0 {
		return 0, false
	}
	return 100 * float64(busy) / float64(total), true
}
