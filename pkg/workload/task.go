package workload

// DoneEps is the numerical tolerance below which remaining work counts as
// finished. Work accounting subtracts floats every tick, so exact zero is not
// guaranteed.
const DoneEps = 1e-12

// Unset marks a start or finish time that has not been recorded yet.
const Unset = -1

// Task is one unit of schedulable work. Work, Remaining and the timestamps
// are in seconds; Work is quoted at the reference configuration (one core,
// frequency fraction 1.0).
type Task struct {
	ID       int
	Class    Class
	Work     float64
	Arrival  float64
	Deadline float64

	Remaining  float64
	StartTime  float64
	FinishTime float64
}

// NewTask builds a task with full remaining work and unset timestamps.
func NewTask(id int, class Class, work, arrival, deadline float64) *Task {
	return &Task{
		ID:         id,
		Class:      class,
		Work:       work,
		Arrival:    arrival,
		Deadline:   deadline,
		Remaining:  work,
		StartTime:  Unset,
		FinishTime: Unset,
	}
}

// Ready reports whether the task has arrived and still has work left.
func (t *Task) Ready(now float64) bool {
	return t.Arrival <= now && t.Remaining > DoneEps
}

// Done reports whether the task's remaining work has reached zero.
func (t *Task) Done() bool { return t.Remaining <= DoneEps }

// Started reports whether any work has ever been performed on the task.
func (t *Task) Started() bool { return t.StartTime != Unset }

// Finished reports whether a finish time has been recorded.
func (t *Task) Finished() bool { return t.FinishTime != Unset }

// Missed reports whether the task has missed its deadline: either it finished
// late, or it is still unfinished and now is past the deadline.
func (t *Task) Missed(now float64) bool {
	if t.Finished() {
		return t.FinishTime > t.Deadline
	}
	return !t.Done() && now > t.Deadline
}

// Workload is an ordered set of tasks, sorted by arrival time ascending.
type Workload []*Task

// Clone returns a deep copy. Steppers clone their input workload at
// construction so that two policies never share mutable task state.
func (w Workload) Clone() Workload {
	out := make(Workload, len(w))
	for i, t := range w {
		c := *t
		out[i] = &c
	}
	return out
}

// Runnable returns the tasks that have arrived and are not yet done, in the
// workload's base order.
func (w Workload) Runnable(now float64) []*Task {
	var r []*Task
	for _, t := range w {
		if t.Ready(now) {
			r = append(r, t)
		}
	}
	return r
}

// AllDone reports whether every task has finished its work.
func (w Workload) AllDone() bool {
	for _, t := range w {
		if !t.Done() {
			return false
		}
	}
	return true
}

// Missed counts the tasks that have missed their deadline as of now.
func (w Workload) Missed(now float64) int {
	n := 0
	for _, t := range w {
		if t.Missed(now) {
			n++
		}
	}
	return n
}

// Completed counts the tasks whose work has finished.
func (w Workload) Completed() int {
	n := 0
	for _, t := range w {
		if t.Done() {
			n++
		}
	}
	return n
}
