package workload

import (
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ja7ad/dvfsim/pkg/util"
)

// Class labels the workload category a generated task belongs to. The class
// decides how much work the task carries and how much slack it gets between
// arrival and deadline.
type Class string

const (
	// ClassLight tasks carry little work and generous slack.
	ClassLight Class = "light"
	// ClassBursty tasks carry little work but tight slack.
	ClassBursty Class = "bursty"
	// ClassHeavy tasks carry a lot of work with generous slack.
	ClassHeavy Class = "heavy"
)

type classProfile struct {
	class            Class
	weight           float64
	workLo, workHi   float64
	slackLo, slackHi float64
}

var classProfiles = []classProfile{
	{ClassLight, 0.45, 0.05, 0.3, 0.8, 2.0},
	{ClassBursty, 0.35, 0.1, 0.4, 0.2, 0.8},
	{ClassHeavy, 0.20, 0.6, 1.6, 1.0, 3.0},
}

// Generate produces n tasks with randomized arrival, work and deadline
// characteristics. It is deterministic: the same seed, n and horizon always
// yield an identical workload. Arrivals are sampled over the first 80% of the
// horizon (quoted at millisecond resolution) and the result is sorted by
// arrival, with the earliest arrival forced to exactly zero so the simulation
// has immediate activity.
func Generate(seed uint64, n int, horizon float64) Workload {
	src := rand.NewSource(seed)

	weights := make([]float64, len(classProfiles))
	for i, p := range classProfiles {
		weights[i] = p.weight
	}
	pick := distuv.NewCategorical(weights, src)
	arrival := distuv.Uniform{Min: 0, Max: 0.8 * horizon, Src: src}

	tasks := make(Workload, 0, n)
	for i := 0; i < n; i++ {
		p := classProfiles[int(pick.Rand())]
		at := util.Round3(arrival.Rand())
		work := distuv.Uniform{Min: p.workLo, Max: p.workHi, Src: src}.Rand()
		slack := distuv.Uniform{Min: p.slackLo, Max: p.slackHi, Src: src}.Rand()
		tasks = append(tasks, NewTask(i+1, p.class, work, at, at+slack))
	}

	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Arrival < tasks[j].Arrival })
	if len(tasks) > 0 && tasks[0].Arrival > 0 {
		// deadline keeps its original slack-relative position
		tasks[0].Arrival = 0
	}
	return tasks
}
