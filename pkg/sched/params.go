package sched

import (
	"fmt"

	"github.com/ja7ad/dvfsim/pkg/power"
)

// Params are the simulation parameters a Stepper is constructed with.
// Tick and Horizon are in seconds of simulated time.
type Params struct {
	// FreqLevels is the discrete set of frequency fractions, each in (0,1],
	// strictly ascending. Enumeration order matters for the Deadline-Safe
	// tie-break, so the order is part of the contract.
	FreqLevels []float64

	// MaxCores bounds the core-count dimension of the configuration space;
	// candidates range over [1, MaxCores].
	MaxCores int

	Tick    float64
	Horizon float64

	// Model evaluates throughput and power. Nil means power.New(nil).
	Model *power.Model
}

// DefaultParams returns the reference parameter set.
func DefaultParams() Params {
	return Params{
		FreqLevels: []float64{0.4, 0.6, 0.8, 1.0},
		MaxCores:   4,
		Tick:       0.05,
		Horizon:    8.0,
	}
}

// Validate fails fast on degenerate construction parameters. Invalid values
// are never silently substituted.
func (p *Params) Validate() error {
	if len(p.FreqLevels) == 0 {
		return ErrNoFreqLevels
	}
	prev := 0.0
	for _, f := range p.FreqLevels {
		if f <= 0 || f > 1 {
			return fmt.Errorf("%w: %v outside (0,1]", ErrBadFreqLevel, f)
		}
		if f <= prev {
			return fmt.Errorf("%w: levels must be strictly ascending, got %v after %v", ErrBadFreqLevel, f, prev)
		}
		prev = f
	}
	if p.MaxCores <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadCores, p.MaxCores)
	}
	if p.Tick <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadTick, p.Tick)
	}
	if p.Horizon <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadHorizon, p.Horizon)
	}
	return nil
}

// MaxConfig returns the maximum-performance configuration: the highest
// frequency level with every core active.
func (p *Params) MaxConfig() Config {
	return Config{Freq: p.FreqLevels[len(p.FreqLevels)-1], Cores: p.MaxCores}
}
