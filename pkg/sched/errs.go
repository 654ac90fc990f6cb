package sched

import "errors"

var (
	// ErrNoFreqLevels indicates that the frequency level set is empty.
	ErrNoFreqLevels = errors.New("sched: empty frequency level set")

	// ErrBadFreqLevel indicates a frequency level outside (0,1] or a set that
	// is not strictly ascending.
	ErrBadFreqLevel = errors.New("sched: bad frequency level")

	// ErrBadCores indicates a non-positive maximum core count.
	ErrBadCores = errors.New("sched: max cores must be positive")

	// ErrBadTick indicates a non-positive tick duration.
	ErrBadTick = errors.New("sched: tick must be positive")

	// ErrBadHorizon indicates a non-positive simulation horizon.
	ErrBadHorizon = errors.New("sched: horizon must be positive")
)
