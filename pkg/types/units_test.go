package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoules_Humanized_Boundaries(t *testing.T) {
	cases := []struct {
		in   Joules
		want string
	}{
		{Joules(0), "0.000 mJ"},
		{Joules(0.0384), "38.400 mJ"},
		{Joules(0.9995), "999.500 mJ"}, // just below 1 J
		{Joules(1), "1.000 J"},
		{Joules(999.99), "999.990 J"},
		{Joules(1000), "1.00 kJ"},
		{Joules(12340), "12.34 kJ"},
		{Joules(1e6), "1.00 MJ"},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.Humanized())
		})
	}
}

func TestWatts_Humanized(t *testing.T) {
	assert.Equal(t, "76.800 mW", Watts(0.0768).Humanized())
	assert.Equal(t, "4.800 W", Watts(4.8).Humanized())
	assert.Equal(t, "1.20 kW", Watts(1200).Humanized())
}

func TestSeconds_Humanized(t *testing.T) {
	assert.Equal(t, "50.0 ms", Seconds(0.05).Humanized())
	assert.Equal(t, "8.000 s", Seconds(8).Humanized())
}

func TestUnitAccessors(t *testing.T) {
	assert.InDelta(t, 1.5, Joules(1500).Kilo(), 1e-12)
	assert.InDelta(t, 50.0, Seconds(0.05).Millis(), 1e-12)
}
