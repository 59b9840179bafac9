package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/freefall/internal/dynamo"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(18)

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	StatusGround = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusCutoff = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	SparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	SparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	SparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// Summary renders a boxed overview of one run. terminal is the analytic
// terminal speed; pass +Inf when there is none.
func Summary(res *dynamo.Result, terminal float64) string {
	var b strings.Builder
	b.WriteString(Title.Render(res.Model+" gravity") + "\n")

	status := StatusGround.Render(string(res.Terminated))
	if res.Terminated == dynamo.TerminatedCutoff {
		status = StatusCutoff.Render(string(res.Terminated))
	}
	b.WriteString(row("terminated", status))
	b.WriteString(row("steps", MetricValue.Render(fmt.Sprintf("%d", res.Steps))))
	b.WriteString(row("samples", MetricValue.Render(fmt.Sprintf("%d", res.Series.Len()))))

	vt := "never"
	if !math.IsInf(terminal, 1) {
		vt = fmt.Sprintf("%.3f m/s", terminal)
	}
	b.WriteString(row("terminal speed", MetricValue.Render(vt)))

	names := make([]string, 0, len(res.Metrics))
	for name := range res.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(row(name, MetricValue.Render(fmt.Sprintf("%.4f", res.Metrics[name]))))
	}

	if res.Series.Len() > 0 {
		b.WriteString(row("speed", Sparkline(res.Series.Velocity, 32)))
	}

	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func row(label, value string) string {
	return MetricLabel.Render(label) + value + "\n"
}

// SideBySide joins summaries horizontally.
func SideBySide(panels ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

// ProgressBar renders a bar filled to percent of width.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	if percent > 0.8 {
		return SparkHigh.Render(bar)
	} else if percent > 0.4 {
		return SparkMid.Render(bar)
	}
	return SparkLow.Render(bar)
}

// Sparkline renders values as a one-line bar chart of magnitudes.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := math.Abs(values[0]), math.Abs(values[0])
	for _, v := range values {
		v = math.Abs(v)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	rng := max - min
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (math.Abs(values[i*step]) - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}

		c := string(chars[idx])
		if norm > 0.7 {
			result.WriteString(SparkHigh.Render(c))
		} else if norm > 0.3 {
			result.WriteString(SparkMid.Render(c))
		} else {
			result.WriteString(SparkLow.Render(c))
		}
	}

	return result.String()
}
