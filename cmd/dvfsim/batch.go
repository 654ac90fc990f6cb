package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ja7ad/dvfsim/pkg/chart"
	"github.com/ja7ad/dvfsim/pkg/config"
	"github.com/ja7ad/dvfsim/pkg/sched"
)

type batchOpts struct {
	scenarioPath string
	seeds        int
	taskCount    int
	workers      int

	csvPath   string
	chartsDir string
}

func newBatchCmd() *cobra.Command {
	var o batchOpts

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run both policies across a range of seeds and export a comparison CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), o)
		},
	}

	cmd.Flags().StringVarP(&o.scenarioPath, "config", "c", "", "path to a YAML scenario file")
	cmd.Flags().IntVar(&o.seeds, "seeds", 5, "number of seeds to run (1..N)")
	cmd.Flags().IntVar(&o.taskCount, "tasks", 30, "number of generated tasks per run")
	cmd.Flags().IntVar(&o.workers, "workers", runtime.NumCPU(), "concurrent simulations")
	cmd.Flags().StringVar(&o.csvPath, "csv", "batch.csv", "summary CSV output path")
	cmd.Flags().StringVar(&o.chartsDir, "charts-dir", "", "directory for per-run energy charts (optional)")

	return cmd
}

type batchRun struct {
	policy sched.Policy
	seed   uint64

	sum   sched.Summary
	trace sched.Trace
	err   error
}

// runBatch executes both policies across the seed range. Each run owns its
// stepper and workload copy, so the runs fan out across workers with no
// shared state; results are reported in deterministic (policy, seed) order.
func runBatch(ctx context.Context, o batchOpts) error {
	if o.seeds < 1 {
		return fmt.Errorf("seeds must be >= 1")
	}
	if o.workers < 1 {
		return fmt.Errorf("workers must be >= 1")
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scenario := config.Default()
	if o.scenarioPath != "" {
		var err error
		if scenario, err = config.Load(o.scenarioPath); err != nil {
			return err
		}
	} else {
		scenario.TaskCount = o.taskCount
	}
	params := scenario.Params()

	runs := make([]*batchRun, 0, 2*o.seeds)
	for _, pol := range []sched.Policy{sched.DeadlineSafe{}, sched.PerformanceFirst{}} {
		for seed := uint64(1); seed <= uint64(o.seeds); seed++ {
			runs = append(runs, &batchRun{policy: pol, seed: seed})
		}
	}

	jobs := make(chan *batchRun)
	var wg sync.WaitGroup
	for w := 0; w < o.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range jobs {
				r.err = execute(r, scenario, params)
			}
		}()
	}
	for _, r := range runs {
		if ctx.Err() != nil {
			break
		}
		jobs <- r
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	for _, r := range runs {
		if r.err != nil {
			return fmt.Errorf("%s seed %d: %w", r.policy.Name(), r.seed, r.err)
		}
	}

	if err := writeBatchCSV(o.csvPath, runs); err != nil {
		return err
	}
	if o.chartsDir != "" {
		if err := writeBatchCharts(o.chartsDir, runs); err != nil {
			slog.Warn("failed to save charts", "err", err)
		}
	}

	printBatchTable(runs)
	fmt.Printf("\nbatch done — CSV saved to %s\n", o.csvPath)
	return nil
}

func execute(r *batchRun, scenario *config.Scenario, params sched.Params) error {
	sc := *scenario
	sc.Seed = r.seed
	st, err := sched.NewStepper(sc.Workload(), r.policy, params)
	if err != nil {
		return err
	}
	r.sum = st.Run()
	r.trace = st.Trace()
	return nil
}

func writeBatchCSV(path string, runs []*batchRun) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"scheduler", "seed", "energy_j", "tasks", "missed"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range runs {
		rec := []string{
			r.policy.Name(),
			fmt.Sprint(r.seed),
			fmt.Sprintf("%.6f", float64(r.sum.Energy)),
			fmt.Sprint(r.sum.Tasks),
			fmt.Sprint(r.sum.Missed),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeBatchCharts(dir string, runs []*batchRun) error {
	out := filepath.Join(dir, "batch_graphs")
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("creating dirs for %s: %w", out, err)
	}
	g := chart.NewGenerator()
	for _, r := range runs {
		name := filepath.Join(out, fmt.Sprintf("%s_seed%d.txt", r.policy.Name(), r.seed))
		if err := os.WriteFile(name, []byte(g.EnergyChart(r.trace)), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func printBatchTable(runs []*batchRun) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCHEDULER\tSEED\tENERGY\tTASKS\tMISSED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%d\n",
			r.policy.Name(), r.seed, r.sum.Energy.Humanized(), r.sum.Tasks, r.sum.Missed)
	}
	tw.Flush()
}
