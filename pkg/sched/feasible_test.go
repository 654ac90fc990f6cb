package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ja7ad/dvfsim/pkg/workload"
)

func TestFeasible_EmptyRunnableAlwaysFeasible(t *testing.T) {
	assert.True(t, Feasible(3.0, nil, 0.4, 1))
	assert.True(t, Feasible(0, []*workload.Task{}, 1.0, 4))
}

func TestFeasible_SingleTask(t *testing.T) {
	task := workload.NewTask(1, workload.ClassLight, 0.2, 0, 2.0)
	runnable := []*workload.Task{task}

	// 0.2s of work at rate 0.4 takes 0.5s, well within the deadline
	assert.True(t, Feasible(0, runnable, 0.4, 1))

	// at t=1.9 even the slowest config cannot make it, but full rate can
	assert.False(t, Feasible(1.9, runnable, 0.4, 1))
	assert.True(t, Feasible(1.9, runnable, 1.0, 4))
}

func TestFeasible_AllTasksMustFit(t *testing.T) {
	loose := workload.NewTask(1, workload.ClassLight, 0.1, 0, 5.0)
	tight := workload.NewTask(2, workload.ClassBursty, 0.3, 0, 0.2)
	runnable := []*workload.Task{loose, tight}

	// the tight task needs rate >= 1.5; (0.4,4)=1.6 works, (0.4,3)=1.2 does not
	assert.True(t, Feasible(0, runnable, 0.4, 4))
	assert.False(t, Feasible(0, runnable, 0.4, 3))
}

func TestFeasible_ExactBoundaryWithinTolerance(t *testing.T) {
	// finishing exactly at the deadline is feasible
	task := workload.NewTask(1, workload.ClassLight, 0.4, 0, 1.0)
	assert.True(t, Feasible(0, []*workload.Task{task}, 0.4, 1))
}

func TestFeasible_DegenerateRateDoesNotDivideByZero(t *testing.T) {
	task := workload.NewTask(1, workload.ClassLight, 0.2, 0, 2.0)
	// zero-rate candidate: guarded denominator, projected completion is far
	// beyond any deadline
	assert.False(t, Feasible(0, []*workload.Task{task}, 0, 0))
}
