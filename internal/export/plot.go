package export

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/san-kum/freefall/internal/dynamo"
	"github.com/san-kum/freefall/internal/viz"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 6 * vg.Inch
)

var lineColors = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
}

// NewPlot builds one channel against time with a line per run.
func NewPlot(results []*dynamo.Result, ch viz.Channel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = ch.Caption
	p.X.Label.Text = "Time(s)"
	p.Y.Label.Text = ch.YLabel
	p.Add(plotter.NewGrid())

	for i, res := range results {
		if res.Series.Len() == 0 {
			return nil, fmt.Errorf("%s: no samples to plot", res.Model)
		}
		ys := ch.Values(&res.Series)
		pts := make(plotter.XYs, len(ys))
		for j := range ys {
			pts[j].X = res.Series.Time[j]
			pts[j].Y = ys[j]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = lineColors[i%len(lineColors)]
		p.Add(line)
		p.Legend.Add(res.Model, line)
	}
	p.Legend.Top = true

	return p, nil
}

// WritePlot encodes one channel plot in the given format ("png", "svg",
// "pdf", ...).
func WritePlot(w io.Writer, results []*dynamo.Result, ch viz.Channel, format string) error {
	p, err := NewPlot(results, ch)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(plotWidth, plotHeight, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SavePlots writes one file per channel into dir and returns their paths.
func SavePlots(dir string, results []*dynamo.Result, format string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create directory: %w", err)
	}

	paths := make([]string, 0, len(viz.Channels))
	for _, ch := range viz.Channels {
		p, err := NewPlot(results, ch)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, fmt.Sprintf("time_vs_%s.%s", ch.Name, format))
		if err := p.Save(plotWidth, plotHeight, path); err != nil {
			return nil, fmt.Errorf("cannot write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
