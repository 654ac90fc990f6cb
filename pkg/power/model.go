package power

import "github.com/ja7ad/dvfsim/pkg/util"

// Config holds model coefficients.
// Units:
//   - PerfConstant: cycles per millisecond per core at frequency fraction 1.0
//   - Coefficient: Watts drawn by one core at frequency fraction 1.0
//   - Exponent: dimensionless frequency exponent (3 for the classic
//     dynamic-power approximation P ~ f^3)
type Config struct {
	PerfConstant float64
	Coefficient  float64
	Exponent     float64
}

// _defaultConfig returns a Config pre-filled with the reference coefficients.
func _defaultConfig() *Config {
	return &Config{
		PerfConstant: 2000, // cycles/ms/core at f=1.0 (arbitrary scale)
		Coefficient:  1.2,  // W per core at f=1.0
		Exponent:     3,    // cubic dynamic power
	}
}

// Model maps a (frequency fraction, core count) configuration to processing
// throughput and instantaneous power. It is pure: evaluating a candidate
// configuration has no side effects, so the scheduler may probe the whole
// configuration space every tick.
type Model struct {
	cfg *Config
}

// New creates a model with the given config. Fields > 0 in cfg override
// defaults; zero or negative values are treated as "unset" and defaulted.
func New(cfg *Config) *Model {
	base := _defaultConfig()

	if cfg == nil {
		return &Model{cfg: base}
	}

	merged := *base
	if cfg.PerfConstant > 0 {
		merged.PerfConstant = cfg.PerfConstant
	}
	if cfg.Coefficient > 0 {
		merged.Coefficient = cfg.Coefficient
	}
	if cfg.Exponent > 0 {
		merged.Exponent = cfg.Exponent
	}
	return &Model{cfg: &merged}
}

// Throughput returns the cycles of work performable per second at the given
// configuration. Linear in both frequency and core count.
func (m *Model) Throughput(freq float64, cores int) float64 {
	return freq * m.cfg.PerfConstant * float64(cores) * 1000.0
}

// Power returns the instantaneous draw in Watts at the given configuration:
// Coefficient * freq^Exponent * cores.
func (m *Model) Power(freq float64, cores int) float64 {
	return m.cfg.Coefficient * util.Pow(freq, m.cfg.Exponent) * float64(cores)
}

// ReferenceThroughput returns the cycles per second of a single core at
// frequency fraction 1.0. Task work is quoted in seconds at this rate.
func (m *Model) ReferenceThroughput() float64 {
	return m.cfg.PerfConstant * 1000.0
}

// CyclesToWork converts a cycle budget into seconds of reference work.
func (m *Model) CyclesToWork(cycles float64) float64 {
	return cycles / m.ReferenceThroughput()
}

// WorkToCycles converts seconds of reference work into cycles.
func (m *Model) WorkToCycles(sec float64) float64 {
	return sec * m.ReferenceThroughput()
}
