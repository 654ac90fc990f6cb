package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/ja7ad/dvfsim/pkg/sched"
	"github.com/ja7ad/dvfsim/pkg/workload"
)

type tickRow struct {
	Time     float64 `json:"time_s"`
	Energy   float64 `json:"energy_j"`
	Freq     float64 `json:"freq"`
	Cores    int     `json:"cores"`
	Util     float64 `json:"util"`
	Running  int     `json:"running_task,omitempty"`
	Fallback bool    `json:"fallback,omitempty"`
}

func traceRows(tr sched.Trace) []tickRow {
	rows := make([]tickRow, len(tr))
	for i, s := range tr {
		rows[i] = tickRow{
			Time:     s.Time,
			Energy:   s.Energy,
			Freq:     s.Freq,
			Cores:    s.Cores,
			Util:     s.Util,
			Running:  s.Running,
			Fallback: s.Fallback,
		}
	}
	return rows
}

// export writes the run's trace to whichever output files were requested.
// File paths are suffixed with the policy name so "both" runs don't clobber
// each other.
func export(st *sched.Stepper, sum sched.Summary, o runOpts) error {
	name := st.Policy().Name()
	if o.csvPath != "" {
		if err := writeTraceCSV(policyPath(o.csvPath, name), st.Trace()); err != nil {
			return err
		}
	}
	if o.jsonPath != "" {
		if err := writeTraceJSON(policyPath(o.jsonPath, name), st.Trace()); err != nil {
			return err
		}
	}
	if o.htmlPath != "" {
		if err := writeHTML(policyPath(o.htmlPath, name), st, sum); err != nil {
			return err
		}
	}
	return nil
}

func policyPath(path, policy string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + "_" + policy + ext
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating dirs for %s: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("os.Create(%s): %w", path, err)
	}
	return f, nil
}

func writeTraceCSV(path string, tr sched.Trace) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time_s", "energy_j", "freq", "cores", "util", "running_task", "fallback"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range traceRows(tr) {
		rec := []string{
			fmt.Sprintf("%.3f", r.Time),
			fmt.Sprintf("%.6f", r.Energy),
			fmt.Sprintf("%.2f", r.Freq),
			fmt.Sprint(r.Cores),
			fmt.Sprintf("%.4f", r.Util),
			fmt.Sprint(r.Running),
			fmt.Sprint(r.Fallback),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeTraceJSON(path string, tr sched.Trace) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	b, err := json.MarshalIndent(traceRows(tr), "", "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(b)
	return err
}

type taskRow struct {
	ID       int
	Class    workload.Class
	Work     float64
	Arrival  float64
	Deadline float64
	Start    string
	Finish   string
	Missed   bool
}

func writeHTML(path string, st *sched.Stepper, sum sched.Summary) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tasks := make([]taskRow, 0, len(st.Tasks()))
	for _, t := range st.Tasks() {
		row := taskRow{
			ID:       t.ID,
			Class:    t.Class,
			Work:     t.Work,
			Arrival:  t.Arrival,
			Deadline: t.Deadline,
			Start:    "-",
			Finish:   "-",
			Missed:   t.Missed(st.Now()),
		}
		if t.Started() {
			row.Start = fmt.Sprintf("%.3f", t.StartTime)
		}
		if t.Finished() {
			row.Finish = fmt.Sprintf("%.3f", t.FinishTime)
		}
		tasks = append(tasks, row)
	}

	data := struct {
		Summary sched.Summary
		Rows    []tickRow
		Tasks   []taskRow
	}{sum, traceRows(st.Trace()), tasks}

	return tpl.Execute(f, data)
}

var tpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>dvfsim Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
.small{color:#555}
.miss{color:#b00}
</style>

<h1>dvfsim Report — {{.Summary.Policy}}</h1>

<p class="small">
Ticks: {{len .Rows}} &nbsp;|&nbsp;
Energy: {{.Summary.Energy.Humanized}} &nbsp;|&nbsp;
Missed: {{.Summary.Missed}}/{{.Summary.Tasks}}
</p>

<h2>Summary</h2>
<ul>
<li>Tasks completed: {{.Summary.Completed}}/{{.Summary.Tasks}}</li>
<li>Deadlines missed: {{.Summary.Missed}}</li>
<li>Energy: {{.Summary.Energy.Humanized}}</li>
<li>Makespan: {{.Summary.Makespan.Humanized}}</li>
<li>Mean utilization: {{printf "%.3f" .Summary.MeanUtil}}</li>
<li>Fallback ticks: {{.Summary.FallbackTicks}}</li>
</ul>

<h2>Tasks</h2>
<table>
<thead>
<tr><th>id</th><th>class</th><th>work (s)</th><th>arrival (s)</th><th>deadline (s)</th><th>start (s)</th><th>finish (s)</th><th>missed</th></tr>
</thead>
<tbody>
{{range .Tasks}}
<tr{{if .Missed}} class="miss"{{end}}>
<td>{{.ID}}</td>
<td>{{.Class}}</td>
<td>{{printf "%.3f" .Work}}</td>
<td>{{printf "%.3f" .Arrival}}</td>
<td>{{printf "%.3f" .Deadline}}</td>
<td>{{.Start}}</td>
<td>{{.Finish}}</td>
<td>{{if .Missed}}yes{{else}}no{{end}}</td>
</tr>
{{end}}
</tbody>
</table>

<h2>Per-tick</h2>
<table>
<thead>
<tr><th>time (s)</th><th>E_cum (J)</th><th>freq</th><th>cores</th><th>util</th><th>running</th><th>fallback</th></tr>
</thead>
<tbody>
{{range .Rows}}
<tr>
<td>{{printf "%.2f" .Time}}</td>
<td>{{printf "%.4f" .Energy}}</td>
<td>{{printf "%.1f" .Freq}}</td>
<td>{{.Cores}}</td>
<td>{{printf "%.3f" .Util}}</td>
<td>{{if .Running}}{{.Running}}{{else}}-{{end}}</td>
<td>{{if .Fallback}}yes{{end}}</td>
</tr>
{{end}}
</tbody>
</table>
</html>`))
