package types

import "fmt"

// Joules is a float64 wrapper representing an amount of energy.
type Joules float64

// Humanized returns a human-readable string with automatic unit (mJ, J, kJ, MJ).
func (j Joules) Humanized() string {
	v := float64(j)
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.2f MJ", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2f kJ", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.3f J", v)
	default:
		return fmt.Sprintf("%.3f mJ", v*1e3)
	}
}

// Kilo returns the energy in kilojoules.
func (j Joules) Kilo() float64 { return float64(j) / 1e3 }

// Watts is a float64 wrapper representing instantaneous power draw.
type Watts float64

// Humanized returns a human-readable string with automatic unit (mW, W, kW).
func (w Watts) Humanized() string {
	v := float64(w)
	switch {
	case v >= 1e3:
		return fmt.Sprintf("%.2f kW", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.3f W", v)
	default:
		return fmt.Sprintf("%.3f mW", v*1e3)
	}
}

// Seconds is a float64 wrapper representing a span of simulated time.
type Seconds float64

// Humanized returns a human-readable string with automatic unit (ms, s).
func (s Seconds) Humanized() string {
	v := float64(s)
	if v < 1 {
		return fmt.Sprintf("%.1f ms", v*1e3)
	}
	return fmt.Sprintf("%.3f s", v)
}

// Millis returns the span in milliseconds.
func (s Seconds) Millis() float64 { return float64(s) * 1e3 }
