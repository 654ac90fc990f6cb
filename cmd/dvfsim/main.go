package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ja7ad/dvfsim/pkg/chart"
	"github.com/ja7ad/dvfsim/pkg/config"
	"github.com/ja7ad/dvfsim/pkg/sched"
	"github.com/ja7ad/dvfsim/pkg/types"
	"github.com/ja7ad/dvfsim/pkg/util"
)

type runOpts struct {
	scenarioPath string
	policy       string

	// workload/machine overrides (ignored when a scenario file is given)
	seed      uint64
	taskCount int

	// display
	every int
	ema   float64

	// outputs
	charts   bool
	csvPath  string
	jsonPath string
	htmlPath string
}

func main() {
	root := &cobra.Command{
		Use:   "dvfsim",
		Short: "DVFS task scheduling simulator",
		Long: `dvfsim simulates dynamic voltage/frequency-scaled task scheduling on a
multi-core processor. It compares an energy-aware Deadline-Safe scheduler,
which picks the cheapest feasible (frequency, cores) configuration every
tick, against a Performance-First baseline that always runs flat out.

Examples:
  dvfsim run --policy both --seed 1 --tasks 30
  dvfsim run --config scenario.yaml --csv out.csv --html report.html
  dvfsim batch --seeds 5 --csv batch.csv --charts-dir graphs/`,
	}

	root.AddCommand(newRunCmd(), newBatchCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var o runOpts

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation and report per-tick samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), o)
		},
	}

	cmd.Flags().StringVarP(&o.scenarioPath, "config", "c", "", "path to a YAML scenario file")
	cmd.Flags().StringVarP(&o.policy, "policy", "p", "both",
		"scheduling policy: deadline-safe, performance-first or both")
	cmd.Flags().Uint64Var(&o.seed, "seed", 1, "workload generator seed")
	cmd.Flags().IntVar(&o.taskCount, "tasks", 30, "number of generated tasks")
	cmd.Flags().IntVar(&o.every, "every", 10, "print every Nth tick (1 = all)")
	cmd.Flags().Float64Var(&o.ema, "ema", 0.5, "EMA alpha for utilization smoothing in the table [0..1]")
	cmd.Flags().BoolVar(&o.charts, "charts", false, "render ASCII charts after the run")
	cmd.Flags().StringVar(&o.csvPath, "csv", "", "write per-tick samples to CSV file")
	cmd.Flags().StringVar(&o.jsonPath, "json", "", "write per-tick samples to JSON file")
	cmd.Flags().StringVar(&o.htmlPath, "html", "", "write per-tick samples and summary to HTML file")

	return cmd
}

func run(ctx context.Context, o runOpts) error {
	if o.ema < 0 || o.ema > 1 {
		return fmt.Errorf("ema must be in [0,1]")
	}
	if o.every < 1 {
		return fmt.Errorf("every must be >= 1")
	}

	scenario, err := loadScenario(o)
	if err != nil {
		return err
	}
	policies, err := resolvePolicies(o.policy)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	params := scenario.Params()
	tasks := scenario.Workload()

	fmt.Printf("dvfsim: %d tasks, tick %s, horizon %s, freq levels %v, %d cores\n\n",
		len(tasks), types.Seconds(params.Tick).Humanized(), types.Seconds(params.Horizon).Humanized(),
		params.FreqLevels, params.MaxCores)

	var summaries []sched.Summary
	for _, pol := range policies {
		st, err := sched.NewStepper(tasks, pol, params)
		if err != nil {
			return err
		}

		sum, err := drive(ctx, st, o)
		if err != nil {
			return err
		}
		summaries = append(summaries, sum)

		if o.charts {
			g := chart.NewGenerator()
			fmt.Println(g.EnergyChart(st.Trace()))
			fmt.Println(g.FrequencyChart(st.Trace()))
			fmt.Println(g.CoresChart(st.Trace()))
			fmt.Println(g.UtilizationChart(st.Trace()))
			fmt.Println(g.GanttStrip(st.Trace()))
		}

		if err := export(st, sum, o); err != nil {
			slog.Warn("export failed", "policy", pol.Name(), "err", err)
		}
	}

	printSummaries(summaries)
	return nil
}

// drive steps the simulation to termination, printing a sample row every Nth
// tick. Ctrl-C stops the loop early; the partial trace is still reported.
func drive(ctx context.Context, st *sched.Stepper, o runOpts) (sched.Summary, error) {
	fmt.Printf("== %s ==\n", st.Policy().Name())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tFREQ\tCORES\tUTIL\tRUNNING\tE_cum (J)")
	fmt.Fprintln(tw, "----\t----\t-----\t----\t-------\t---------")
	tw.Flush()

	smoother := util.NewEMA(o.ema)
	tick := 0
	for {
		if ctx.Err() != nil {
			slog.Info("interrupted", "policy", st.Policy().Name())
			break
		}
		cont := st.Step()
		tick++

		tr := st.Trace()
		if len(tr) > 0 && (tick%o.every == 0 || !cont) {
			s := tr[len(tr)-1]
			running := "-"
			if s.Running != 0 {
				running = fmt.Sprintf("task %d", s.Running)
			}
			fmt.Fprintf(tw, "%.2fs\t%.1f\t%d\t%.3f\t%s\t%.3f\n",
				s.Time, s.Freq, s.Cores, smoother.Next(s.Util), running, s.Energy)
			tw.Flush()
		}
		if !cont {
			break
		}
	}
	fmt.Println()
	return st.Summary(), nil
}

func printSummaries(sums []sched.Summary) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POLICY\tTASKS\tDONE\tMISSED\tENERGY\tMAKESPAN\tMEAN UTIL\tFALLBACK TICKS")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\t%.3f\t%d\n",
			s.Policy, s.Tasks, s.Completed, s.Missed,
			s.Energy.Humanized(), s.Makespan.Humanized(), s.MeanUtil, s.FallbackTicks)
	}
	tw.Flush()

	if len(sums) == 2 && sums[1].Energy > 0 {
		saved := 1 - float64(sums[0].Energy)/float64(sums[1].Energy)
		fmt.Printf("\nenergy saved by %s vs %s: %.1f%%\n", sums[0].Policy, sums[1].Policy, 100*saved)
	}
}

func loadScenario(o runOpts) (*config.Scenario, error) {
	if o.scenarioPath != "" {
		return config.Load(o.scenarioPath)
	}
	s := config.Default()
	s.Seed = o.seed
	s.TaskCount = o.taskCount
	return s, nil
}

func resolvePolicies(name string) ([]sched.Policy, error) {
	if name == "both" {
		return []sched.Policy{sched.DeadlineSafe{}, sched.PerformanceFirst{}}, nil
	}
	pol, ok := sched.PolicyByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown policy %q (want deadline-safe, performance-first or both)", name)
	}
	return []sched.Policy{pol}, nil
}
