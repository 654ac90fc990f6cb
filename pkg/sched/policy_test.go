package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/dvfsim/pkg/power"
	"github.com/ja7ad/dvfsim/pkg/workload"
)

func testParams() Params {
	p := DefaultParams()
	p.Model = power.New(nil)
	return p
}

func TestPerformanceFirst_AlwaysMax(t *testing.T) {
	p := testParams()
	task := workload.NewTask(1, workload.ClassLight, 0.2, 0, 2.0)

	cfg, fallback := PerformanceFirst{}.Choose(0, []*workload.Task{task}, &p)
	assert.Equal(t, Config{Freq: 1.0, Cores: 4}, cfg)
	assert.False(t, fallback)

	// even with nothing runnable
	cfg, _ = PerformanceFirst{}.Choose(5, nil, &p)
	assert.Equal(t, Config{Freq: 1.0, Cores: 4}, cfg)
}

func TestDeadlineSafe_GenerousSlackPicksCheapest(t *testing.T) {
	p := testParams()
	task := workload.NewTask(1, workload.ClassLight, 0.2, 0, 2.0)

	cfg, fallback := DeadlineSafe{}.Choose(0, []*workload.Task{task}, &p)
	assert.False(t, fallback)
	assert.Equal(t, Config{Freq: 0.4, Cores: 1}, cfg, "lowest-power configuration is feasible and must win")
}

func TestDeadlineSafe_TightDeadlineScalesUp(t *testing.T) {
	p := testParams()
	// 0.2s of work due in 0.1s: needs rate >= 2.0
	task := workload.NewTask(1, workload.ClassBursty, 0.2, 0, 0.1)

	cfg, fallback := DeadlineSafe{}.Choose(0, []*workload.Task{task}, &p)
	require.False(t, fallback)

	// among configurations with f*n >= 2, (0.6,4) has the lowest power:
	// 1.2*0.6^3*4 = 1.037 vs (0.8,3)=1.843, (1.0,2)=2.4
	assert.Equal(t, Config{Freq: 0.6, Cores: 4}, cfg)
}

func TestDeadlineSafe_InfeasibleFallsBackToMax(t *testing.T) {
	p := testParams()
	// hopeless: 10s of work due now
	task := workload.NewTask(1, workload.ClassHeavy, 10, 0, 0)

	cfg, fallback := DeadlineSafe{}.Choose(0, []*workload.Task{task}, &p)
	assert.True(t, fallback)
	assert.Equal(t, p.MaxConfig(), cfg, "fallback guarantees forward progress at max performance")
}

func TestDeadlineSafe_IdlePicksMinimumPower(t *testing.T) {
	p := testParams()
	cfg, fallback := DeadlineSafe{}.Choose(1.0, nil, &p)
	assert.False(t, fallback)
	assert.Equal(t, Config{Freq: 0.4, Cores: 1}, cfg)
}

func TestDeadlineSafe_Deterministic(t *testing.T) {
	p := testParams()
	tasks := []*workload.Task{
		workload.NewTask(1, workload.ClassLight, 0.2, 0, 1.0),
		workload.NewTask(2, workload.ClassBursty, 0.3, 0, 0.6),
	}
	first, _ := DeadlineSafe{}.Choose(0, tasks, &p)
	for i := 0; i < 10; i++ {
		cfg, _ := DeadlineSafe{}.Choose(0, tasks, &p)
		assert.Equal(t, first, cfg, "choice must be stable across repeated evaluation")
	}
}

func TestPolicyByName(t *testing.T) {
	pol, ok := PolicyByName("deadline-safe")
	require.True(t, ok)
	assert.IsType(t, DeadlineSafe{}, pol)

	pol, ok = PolicyByName("performance-first")
	require.True(t, ok)
	assert.IsType(t, PerformanceFirst{}, pol)

	_, ok = PolicyByName("round-robin")
	assert.False(t, ok)
}
