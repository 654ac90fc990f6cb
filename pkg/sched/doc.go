// Package sched is the time-stepped DVFS scheduling engine. It advances a
// workload one fixed tick at a time, choosing a (frequency, core count)
// configuration per tick, allocating throughput to runnable tasks in deadline
// order, and integrating the power model into cumulative energy.
//
// Two policies are provided:
//
//   - DeadlineSafe: enumerates the discrete configuration space every tick,
//     keeps only candidates the feasibility oracle accepts, and picks the one
//     with the lowest estimated tick energy. Falls back to maximum
//     performance when nothing is feasible.
//
//   - PerformanceFirst: maximum frequency on all cores, unconditionally.
//     Serves as the baseline the energy-aware policy is compared against.
//
// The feasibility oracle (Feasible) projects each runnable task's completion
// under the candidate configuration held constant — a deliberately
// conservative single-configuration lookahead. Do not replace it with a
// multi-tick projection: that changes scheduling outcomes and invalidates the
// policy comparison.
//
// Lifecycle: a Stepper starts Idle, moves to Running on the first Step, and
// terminates once every task is done or the horizon elapses. Termination is
// absorbing; further Step calls return false without mutating anything.
//
// Each Stepper deep-copies its workload at construction and owns its trace
// exclusively, so running many steppers concurrently (one per policy, or one
// per seed in a batch) needs no locking. Concurrent Step calls on a single
// instance are not supported.
//
// Example: compare the two policies on one seeded workload
//
//	tasks := workload.Generate(1, 30, 8.0)
//	ds, _ := sched.NewStepper(tasks, sched.DeadlineSafe{}, sched.DefaultParams())
//	pf, _ := sched.NewStepper(tasks, sched.PerformanceFirst{}, sched.DefaultParams())
//	a, b := ds.Run(), pf.Run()
//	fmt.Printf("%s: %s, %d missed\n", a.Policy, a.Energy.Humanized(), a.Missed)
//	fmt.Printf("%s: %s, %d missed\n", b.Policy, b.Energy.Humanized(), b.Missed)
package sched
