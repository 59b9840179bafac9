package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/freefall/internal/dynamo"
)

// Channel selects one sequence of a series against time.
type Channel struct {
	Name    string
	Caption string
	YLabel  string
	Values  func(s *dynamo.SampleSeries) []float64
}

var Channels = []Channel{
	{"position", "Time(s) vs Position(m)", "Position(m)", func(s *dynamo.SampleSeries) []float64 { return s.Position }},
	{"velocity", "Time(s) vs Velocity(m/s)", "Velocity(m/s)", func(s *dynamo.SampleSeries) []float64 { return s.Velocity }},
	{"netforce", "Time(s) vs NetForce(N)", "NetForce(N)", func(s *dynamo.SampleSeries) []float64 { return s.NetForce }},
}

var seriesColors = []asciigraph.AnsiColor{asciigraph.Cyan, asciigraph.Magenta, asciigraph.Yellow, asciigraph.Green}

// PlotResult writes the three time plots of one run.
func PlotResult(w io.Writer, res *dynamo.Result, height, width int) error {
	if res.Series.Len() == 0 {
		_, err := fmt.Fprintf(w, "%s: no samples to plot\n", res.Model)
		return err
	}

	for _, ch := range Channels {
		graph := asciigraph.Plot(ch.Values(&res.Series),
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(fmt.Sprintf("%s  [%s, t=%.3g..%.3g]", ch.Caption, res.Model, res.Series.Time[0], res.Series.Time[res.Series.Len()-1])),
		)
		if _, err := fmt.Fprintf(w, "%s\n\n", graph); err != nil {
			return err
		}
	}
	return nil
}

// PlotCompare overlays the same channel of several runs, one color per run.
func PlotCompare(w io.Writer, results []*dynamo.Result, height, width int) error {
	names := make([]string, 0, len(results))
	for _, res := range results {
		if res.Series.Len() == 0 {
			return fmt.Errorf("%s: no samples to plot", res.Model)
		}
		names = append(names, res.Model)
	}

	colors := make([]asciigraph.AnsiColor, len(results))
	for i := range results {
		colors[i] = seriesColors[i%len(seriesColors)]
	}

	for _, ch := range Channels {
		data := make([][]float64, len(results))
		for i, res := range results {
			data[i] = ch.Values(&res.Series)
		}
		graph := asciigraph.PlotMany(data,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.SeriesColors(colors...),
			asciigraph.Caption(fmt.Sprintf("%s  [%s]", ch.Caption, strings.Join(names, " / "))),
		)
		if _, err := fmt.Fprintf(w, "%s\n\n", graph); err != nil {
			return err
		}
	}
	return nil
}
