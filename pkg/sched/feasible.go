package sched

import "github.com/ja7ad/dvfsim/pkg/workload"

// feasEps absorbs floating-point drift in deadline comparisons.
const feasEps = 1e-9

// Feasible reports whether every runnable task can still meet its deadline if
// the candidate configuration is held constant until that task finishes.
//
// The projection is a single-configuration lookahead: it ignores that the
// scheduler re-evaluates the configuration every tick, which makes it
// conservative in favor of safety. It is not a full schedulability proof.
func Feasible(now float64, runnable []*workload.Task, freq float64, cores int) bool {
	rate := freq * float64(cores) // reference work per second
	if rate <= 0 {
		rate = 1e-9
	}
	for _, t := range runnable {
		need := t.Remaining / rate
		if now+need > t.Deadline+feasEps {
			return false
		}
	}
	return true
}
