package workload

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHorizon = 8.0

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(1, 30, testHorizon)
	b := Generate(1, 30, testHorizon)
	require.Equal(t, a, b, "same seed must produce an identical workload")

	c := Generate(2, 30, testHorizon)
	assert.NotEqual(t, a, c, "different seeds should diverge")
}

func TestGenerate_CountAndOrdering(t *testing.T) {
	w := Generate(42, 50, testHorizon)
	require.Len(t, w, 50)

	assert.True(t, sort.SliceIsSorted(w, func(i, j int) bool {
		return w[i].Arrival < w[j].Arrival
	}), "tasks must be sorted by arrival")

	assert.Equal(t, 0.0, w[0].Arrival, "earliest task is forced to arrive at t=0")
}

func TestGenerate_ClassRanges(t *testing.T) {
	w := Generate(7, 200, testHorizon)

	seen := map[Class]int{}
	for i, task := range w {
		seen[task.Class]++

		require.Greater(t, task.Work, 0.0)
		require.Equal(t, task.Work, task.Remaining)
		require.GreaterOrEqual(t, task.Arrival, 0.0)
		require.LessOrEqual(t, task.Arrival, 0.8*testHorizon)
		require.Greater(t, task.Deadline, task.Arrival, "deadline must leave positive slack")

		if i == 0 {
			// the earliest task's arrival is forced to 0 while its deadline
			// keeps the pre-adjustment position, so its slack can exceed the
			// class range
			continue
		}
		slack := task.Deadline - task.Arrival
		switch task.Class {
		case ClassLight:
			assert.InDelta(t, 0.175, task.Work, 0.125, "light work in [0.05,0.3]")
			assert.InDelta(t, 1.4, slack, 0.61, "light slack in [0.8,2.0] (arrival rounded)")
		case ClassBursty:
			assert.InDelta(t, 0.25, task.Work, 0.15)
			assert.InDelta(t, 0.5, slack, 0.31)
		case ClassHeavy:
			assert.InDelta(t, 1.1, task.Work, 0.5)
			assert.InDelta(t, 2.0, slack, 1.01)
		default:
			t.Fatalf("unknown class %q", task.Class)
		}
	}

	// weighted choice should produce all three classes over 200 draws,
	// with light the most common
	require.Len(t, seen, 3)
	assert.Greater(t, seen[ClassLight], seen[ClassHeavy])
}

func TestGenerate_UniqueIDs(t *testing.T) {
	w := Generate(3, 30, testHorizon)
	ids := map[int]bool{}
	for _, task := range w {
		assert.Positive(t, task.ID)
		assert.False(t, ids[task.ID], "duplicate id %d", task.ID)
		ids[task.ID] = true
	}
}
