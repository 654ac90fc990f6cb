package sched

import (
	"math"
	"sort"

	"github.com/ja7ad/dvfsim/pkg/power"
	"github.com/ja7ad/dvfsim/pkg/util"
	"github.com/ja7ad/dvfsim/pkg/workload"
)

// progressEps is the minimal forced progress applied when floating-point
// rounding would otherwise hand the first runnable task zero work.
const progressEps = 1e-6

type state int

const (
	stateIdle state = iota
	stateRunning
	stateTerminated
)

// Stepper advances one policy over its private copy of a workload, one fixed
// tick at a time. It owns its tasks and trace exclusively: the input workload
// is deep-copied at construction, so running the same workload under two
// policies never shares mutable state.
//
// A Stepper is not safe for concurrent Step calls on the same instance.
// Distinct Steppers are fully independent and may run in parallel.
type Stepper struct {
	params Params
	policy Policy
	tasks  workload.Workload

	now    float64
	energy float64
	trace  Trace
	st     state
}

// NewStepper builds a stepper for the given workload and policy. It fails
// fast on invalid parameters rather than substituting defaults. A nil
// params.Model falls back to the reference power model.
func NewStepper(tasks workload.Workload, policy Policy, params Params) (*Stepper, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.Model == nil {
		params.Model = power.New(nil)
	}
	return &Stepper{
		params: params,
		policy: policy,
		tasks:  tasks.Clone(),
	}, nil
}

// Step advances simulated time by one tick: it selects a configuration,
// allocates the tick's capacity to runnable tasks in deadline order, updates
// remaining work, integrates energy, and appends a trace sample.
//
// It returns false when the simulation has terminated, either because every
// task is done or because the horizon elapsed. Calling Step after termination
// is an idempotent no-op that returns false without mutating state.
func (s *Stepper) Step() bool {
	if s.st == stateTerminated {
		return false
	}
	if s.tasks.AllDone() || s.now >= s.params.Horizon {
		s.st = stateTerminated
		return false
	}
	s.st = stateRunning

	dt := s.params.Tick
	model := s.params.Model

	runnable := s.tasks.Runnable(s.now)
	cfg, fallback := s.policy.Choose(s.now, runnable, &s.params)

	// earliest deadline first; stable so equal deadlines keep base order
	sort.SliceStable(runnable, func(i, j int) bool {
		return runnable[i].Deadline < runnable[j].Deadline
	})

	capacity := model.Throughput(cfg.Freq, cfg.Cores) * dt // cycles
	work := make(map[int]float64, len(runnable))
	running := 0
	done := 0.0

	for _, t := range runnable {
		if capacity <= 0 {
			break
		}
		do := math.Min(t.Remaining, model.CyclesToWork(capacity))
		if do <= 0 {
			do = math.Min(progressEps, t.Remaining)
		}
		if !t.Started() {
			t.StartTime = s.now
		}
		t.Remaining -= do
		if t.Remaining < 0 {
			t.Remaining = 0
		}
		done += do
		work[t.ID] += do
		running = t.ID
		capacity -= model.WorkToCycles(do)
		if t.Done() && !t.Finished() {
			t.FinishTime = s.now + dt
		}
	}

	s.energy += model.Power(cfg.Freq, cfg.Cores) * dt
	s.now += dt

	s.trace = append(s.trace, Sample{
		Time:     s.now,
		Energy:   s.energy,
		Freq:     cfg.Freq,
		Cores:    cfg.Cores,
		Util:     util.Clamp01(util.SafeDiv(done, float64(cfg.Cores)*cfg.Freq*dt)),
		Running:  running,
		Work:     work,
		Fallback: fallback,
	})

	if s.tasks.AllDone() || s.now >= s.params.Horizon {
		s.st = stateTerminated
		return false
	}
	return true
}

// Run drives the stepper to termination and returns its summary.
func (s *Stepper) Run() Summary {
	for s.Step() {
	}
	return s.Summary()
}

// Now returns the current simulated time.
func (s *Stepper) Now() float64 { return s.now }

// Energy returns the cumulative energy in Joules.
func (s *Stepper) Energy() float64 { return s.energy }

// Terminated reports whether the simulation has ended.
func (s *Stepper) Terminated() bool { return s.st == stateTerminated }

// Policy returns the configured policy.
func (s *Stepper) Policy() Policy { return s.policy }

// Trace returns the per-tick time series. Read-only to callers.
func (s *Stepper) Trace() Trace { return s.trace }

// Tasks returns the stepper's private task list with the final
// start/finish/remaining values. Read-only to callers.
func (s *Stepper) Tasks() workload.Workload { return s.tasks }
