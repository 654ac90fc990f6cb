package sched

import "github.com/ja7ad/dvfsim/pkg/types"

// Summary aggregates a run for reporting and export consumers.
type Summary struct {
	Policy    string
	Tasks     int
	Completed int

	// Missed counts tasks that finished after their deadline plus tasks
	// still unfinished once their deadline passed.
	Missed int

	Energy        types.Joules
	Makespan      types.Seconds // finish time of the last completed task
	SimTime       types.Seconds // simulated time at termination
	MeanUtil      float64
	FallbackTicks int
}

// Summary computes the derived summary at the stepper's current state. It is
// normally read after termination but is safe to call mid-run.
func (s *Stepper) Summary() Summary {
	makespan := 0.0
	for _, t := range s.tasks {
		if t.Finished() && t.FinishTime > makespan {
			makespan = t.FinishTime
		}
	}
	return Summary{
		Policy:        s.policy.Name(),
		Tasks:         len(s.tasks),
		Completed:     s.tasks.Completed(),
		Missed:        s.tasks.Missed(s.now),
		Energy:        types.Joules(s.energy),
		Makespan:      types.Seconds(makespan),
		SimTime:       types.Seconds(s.now),
		MeanUtil:      s.trace.MeanUtil(),
		FallbackTicks: s.trace.FallbackTicks(),
	}
}
