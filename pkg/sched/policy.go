package sched

import (
	"math"

	"github.com/ja7ad/dvfsim/pkg/workload"
)

// Config is one point of the discrete configuration space: a frequency
// fraction paired with an active core count.
type Config struct {
	Freq  float64
	Cores int
}

// Policy selects the configuration to hold for the next tick. Implementations
// must be stateless; the Stepper passes everything a decision needs.
type Policy interface {
	Name() string

	// Choose returns the configuration for the coming tick. The second
	// return is true when no candidate was feasible and the policy fell
	// back to maximum performance.
	Choose(now float64, runnable []*workload.Task, p *Params) (Config, bool)
}

// DeadlineSafe is the energy-aware policy. Each tick it enumerates the whole
// configuration space, discards candidates the feasibility oracle rejects,
// and picks the one with the lowest estimated tick energy. Ties keep the
// first candidate in enumeration order (lowest frequency, then fewest cores).
// When nothing is feasible it falls back to maximum performance so the
// simulation keeps making progress instead of stalling.
type DeadlineSafe struct{}

func (DeadlineSafe) Name() string { return "deadline-safe" }

func (DeadlineSafe) Choose(now float64, runnable []*workload.Task, p *Params) (Config, bool) {
	best := Config{}
	bestEnergy := math.Inf(1)
	for _, f := range p.FreqLevels {
		for n := 1; n <= p.MaxCores; n++ {
			if !Feasible(now, runnable, f, n) {
				continue
			}
			if est := p.Model.Power(f, n) * p.Tick; est < bestEnergy {
				best = Config{Freq: f, Cores: n}
				bestEnergy = est
			}
		}
	}
	if math.IsInf(bestEnergy, 1) {
		return p.MaxConfig(), true
	}
	return best, false
}

// PerformanceFirst is the baseline policy: maximum frequency on all cores,
// every tick, regardless of feasibility or energy cost.
type PerformanceFirst struct{}

func (PerformanceFirst) Name() string { return "performance-first" }

func (PerformanceFirst) Choose(_ float64, _ []*workload.Task, p *Params) (Config, bool) {
	return p.MaxConfig(), false
}

// PolicyByName resolves a policy from its CLI/scenario name.
func PolicyByName(name string) (Policy, bool) {
	switch name {
	case DeadlineSafe{}.Name():
		return DeadlineSafe{}, true
	case PerformanceFirst{}.Name():
		return PerformanceFirst{}, true
	}
	return nil, false
}
