package config

import (
	"sort"
	"time"

	"github.com/ja7ad/dvfsim/pkg/power"
	"github.com/ja7ad/dvfsim/pkg/sched"
	"github.com/ja7ad/dvfsim/pkg/workload"
)

// Scenario is a YAML simulation description: the machine parameters, the
// power model coefficients, and the workload — either generator settings or
// an explicit task list.
type Scenario struct {
	FreqLevels []float64     `yaml:"freqLevels"`
	MaxCores   int           `yaml:"maxCores"`
	Tick       time.Duration `yaml:"tick"`
	Horizon    time.Duration `yaml:"horizon"`

	PerfConstant     float64 `yaml:"perfConstant,omitempty"`
	PowerCoefficient float64 `yaml:"powerCoefficient,omitempty"`
	PowerExponent    float64 `yaml:"powerExponent,omitempty"`

	Seed      uint64 `yaml:"seed"`
	TaskCount int    `yaml:"taskCount"`

	// Tasks, when present, replaces the generated workload.
	Tasks []TaskSpec `yaml:"tasks,omitempty"`
}

// TaskSpec is one explicitly declared task.
type TaskSpec struct {
	Work     time.Duration `yaml:"work"`
	Arrival  time.Duration `yaml:"arrival"`
	Deadline time.Duration `yaml:"deadline"`
}

// Default returns the reference scenario: the default machine with a 30-task
// generated workload from seed 1.
func Default() *Scenario {
	return &Scenario{
		FreqLevels: []float64{0.4, 0.6, 0.8, 1.0},
		MaxCores:   4,
		Tick:       50 * time.Millisecond,
		Horizon:    8 * time.Second,
		Seed:       1,
		TaskCount:  30,
	}
}

// Params converts the scenario into stepper construction parameters.
func (s *Scenario) Params() sched.Params {
	return sched.Params{
		FreqLevels: s.FreqLevels,
		MaxCores:   s.MaxCores,
		Tick:       s.Tick.Seconds(),
		Horizon:    s.Horizon.Seconds(),
		Model: power.New(&power.Config{
			PerfConstant: s.PerfConstant,
			Coefficient:  s.PowerCoefficient,
			Exponent:     s.PowerExponent,
		}),
	}
}

// Workload builds the scenario's workload: the explicit task list when one is
// declared, otherwise a seeded generated set.
func (s *Scenario) Workload() workload.Workload {
	if len(s.Tasks) == 0 {
		return workload.Generate(s.Seed, s.TaskCount, s.Horizon.Seconds())
	}
	w := make(workload.Workload, 0, len(s.Tasks))
	for i, spec := range s.Tasks {
		w = append(w, workload.NewTask(i+1, "",
			spec.Work.Seconds(), spec.Arrival.Seconds(), spec.Deadline.Seconds()))
	}
	sort.SliceStable(w, func(i, j int) bool { return w[i].Arrival < w[j].Arrival })
	return w
}
