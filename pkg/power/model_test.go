package power

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NilUsesDefaults(t *testing.T) {
	m := New(nil)
	assert.InDelta(t, 2000*1000.0, m.ReferenceThroughput(), 1e-9)
	assert.InDelta(t, 1.2, m.Power(1.0, 1), 1e-12)
}

func TestNew_PartialOverride(t *testing.T) {
	m := New(&Config{Coefficient: 2.0})
	// overridden
	assert.InDelta(t, 2.0, m.Power(1.0, 1), 1e-12)
	// defaulted
	assert.InDelta(t, 2000*1000.0, m.ReferenceThroughput(), 1e-9)

	// negative values are "unset"
	m = New(&Config{PerfConstant: -5, Exponent: -1})
	assert.InDelta(t, 2000*1000.0, m.ReferenceThroughput(), 1e-9)
	assert.InDelta(t, 1.2*0.064, m.Power(0.4, 1), 1e-12, "exponent stays cubic")
}

func TestThroughput_LinearInFreqAndCores(t *testing.T) {
	m := New(nil)
	base := m.Throughput(0.5, 1)
	require.Greater(t, base, 0.0)

	assert.InDelta(t, 2*base, m.Throughput(1.0, 1), 1e-6, "doubling frequency doubles throughput")
	assert.InDelta(t, 4*base, m.Throughput(0.5, 4), 1e-6, "quadrupling cores quadruples throughput")
}

func TestPower_CubicInFreqLinearInCores(t *testing.T) {
	m := New(nil)

	// f^3 scaling: halving frequency divides dynamic power by 8
	assert.InDelta(t, m.Power(1.0, 1)/8, m.Power(0.5, 1), 1e-12)
	// linear in cores
	assert.InDelta(t, 4*m.Power(0.8, 1), m.Power(0.8, 4), 1e-12)

	// reference values from the coefficient table
	assert.InDelta(t, 1.2*0.064*1, m.Power(0.4, 1), 1e-12)
	assert.InDelta(t, 1.2*1*4, m.Power(1.0, 4), 1e-12)
}

func TestCycleWorkConversion_RoundTrip(t *testing.T) {
	m := New(&Config{PerfConstant: 1500})
	sec := 0.35
	assert.InDelta(t, sec, m.CyclesToWork(m.WorkToCycles(sec)), 1e-12)

	// one second of reference work is exactly the reference throughput in cycles
	assert.InDelta(t, m.ReferenceThroughput(), m.WorkToCycles(1.0), 1e-9)
}

func TestCapacityPerTick(t *testing.T) {
	m := New(nil)
	// capacity of one 50ms tick at (f=1.0, n=4) is 0.2s of reference work
	cycles := m.Throughput(1.0, 4) * 0.05
	assert.InDelta(t, 0.2, m.CyclesToWork(cycles), 1e-12)
}
