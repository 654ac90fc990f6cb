package sched

// Sample is one per-tick observation. Time is the simulated time at the end
// of the tick; Energy is cumulative.
type Sample struct {
	Time   float64
	Energy float64
	Freq   float64
	Cores  int
	Util   float64

	// Running is the representative task for the tick: the last task that
	// received any work, or 0 when the tick was idle. Presentation layers
	// that want the full picture should use Work instead.
	Running int

	// Work maps task id to the seconds of reference work performed on that
	// task during this tick.
	Work map[int]float64

	// Fallback is true when no configuration was feasible and the policy
	// fell back to maximum performance.
	Fallback bool
}

// Trace is the append-only time series a Stepper produces. Samples are never
// mutated retroactively.
type Trace []Sample

// Energy returns the final cumulative energy, or 0 for an empty trace.
func (tr Trace) Energy() float64 {
	if len(tr) == 0 {
		return 0
	}
	return tr[len(tr)-1].Energy
}

// MeanUtil returns the average utilization over all samples.
func (tr Trace) MeanUtil() float64 {
	if len(tr) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range tr {
		sum += s.Util
	}
	return sum / float64(len(tr))
}

// FallbackTicks counts the ticks on which no configuration was feasible.
func (tr Trace) FallbackTicks() int {
	n := 0
	for _, s := range tr {
		if s.Fallback {
			n++
		}
	}
	return n
}
