package chart

import (
	"fmt"
	"strings"

	"github.com/ja7ad/dvfsim/pkg/sched"
)

const (
	chartWidth  = 80
	chartHeight = 12
)

// Generator renders ASCII charts of a simulation trace.
type Generator struct {
	width  int
	height int
}

// NewGenerator creates a new chart generator.
func NewGenerator() *Generator {
	return &Generator{
		width:  chartWidth,
		height: chartHeight,
	}
}

// EnergyChart renders the cumulative energy curve.
func (g *Generator) EnergyChart(tr sched.Trace) string {
	values := make([]float64, len(tr))
	for i, s := range tr {
		values[i] = s.Energy
	}
	return g.renderSeries("Cumulative Energy (J)", values, tr)
}

// FrequencyChart renders the chosen frequency fraction per tick.
func (g *Generator) FrequencyChart(tr sched.Trace) string {
	values := make([]float64, len(tr))
	for i, s := range tr {
		values[i] = s.Freq
	}
	return g.renderSeries("CPU Frequency (fraction)", values, tr)
}

// CoresChart renders the active core count per tick.
func (g *Generator) CoresChart(tr sched.Trace) string {
	values := make([]float64, len(tr))
	for i, s := range tr {
		values[i] = float64(s.Cores)
	}
	return g.renderSeries("Active Cores", values, tr)
}

// UtilizationChart renders the estimated utilization per tick.
func (g *Generator) UtilizationChart(tr sched.Trace) string {
	values := make([]float64, len(tr))
	for i, s := range tr {
		values[i] = s.Util
	}
	return g.renderSeries("Utilization (est)", values, tr)
}

// GanttStrip renders a one-line strip of the representative running task over
// time, followed by a legend of the contiguous segments.
func (g *Generator) GanttStrip(tr sched.Trace) string {
	if len(tr) == 0 {
		return "No data to display"
	}

	var sb strings.Builder
	sb.WriteString("\nRunning Task\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n    |")

	cols := g.width - 6
	for x := 0; x < cols; x++ {
		s := tr[sampleIndex(x, cols, len(tr))]
		if s.Running == 0 {
			sb.WriteString(".")
		} else {
			sb.WriteString("#")
		}
	}
	sb.WriteString("|\n")

	// legend: contiguous runs of the same representative task
	start := 0
	for i := 1; i <= len(tr); i++ {
		if i < len(tr) && tr[i].Running == tr[start].Running {
			continue
		}
		from := tr[start].Time
		to := tr[i-1].Time
		if tr[start].Running == 0 {
			sb.WriteString(fmt.Sprintf("  %6.2fs - %6.2fs  idle\n", from, to))
		} else {
			sb.WriteString(fmt.Sprintf("  %6.2fs - %6.2fs  task %d\n", from, to, tr[start].Running))
		}
		start = i
	}
	return sb.String()
}

// renderSeries draws one value series against time with a labeled y-axis.
func (g *Generator) renderSeries(title string, values []float64, tr sched.Trace) string {
	if len(values) == 0 {
		return "No data to display"
	}

	maxY := 0.0
	for _, v := range values {
		if v > maxY {
			maxY = v
		}
	}
	if maxY == 0 {
		maxY = 1
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	cols := g.width - 10
	for row := g.height; row >= 1; row-- {
		upper := maxY * float64(row) / float64(g.height)
		lower := maxY * float64(row-1) / float64(g.height)
		sb.WriteString(fmt.Sprintf("%7.2f |", upper))

		for x := 0; x < cols; x++ {
			v := values[sampleIndex(x, cols, len(values))]
			switch {
			case v >= upper:
				sb.WriteString("#")
			case v > lower:
				sb.WriteString("*")
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("        +")
	sb.WriteString(strings.Repeat("-", cols))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("        0s%*s\n", cols-2, fmt.Sprintf("%.2fs", tr[len(tr)-1].Time)))
	return sb.String()
}

func sampleIndex(x, cols, n int) int {
	idx := int(float64(x) / float64(cols) * float64(n-1))
	if idx >= n {
		idx = n - 1
	}
	return idx
}
