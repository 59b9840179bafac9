package analysis

import (
	"math"
	"strings"

	"github.com/san-kum/freefall/internal/dynamo"
)

type Point struct {
	X, Y float64
}

// PhasePortrait pairs speed (X) with height (Y) per sample.
type PhasePortrait struct {
	Points []Point
}

func NewPhasePortrait(series dynamo.SampleSeries) *PhasePortrait {
	portrait := &PhasePortrait{Points: make([]Point, 0, series.Len())}
	for i := 0; i < series.Len(); i++ {
		s := series.At(i)
		portrait.Points = append(portrait.Points, Point{X: math.Abs(s.Velocity), Y: s.Position})
	}
	return portrait
}

// ASCII draws the portrait on a width x height character canvas. Axes are
// drawn where zero falls inside the padded bounds.
func (p *PhasePortrait) ASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for _, pt := range p.Points {
		col := int((pt.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((pt.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if col >= 0 && col < width && canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// ApproachTime returns the time of the first sample whose speed is at least
// fraction of terminal. ok is false when no sample gets there or terminal is
// not finite.
func ApproachTime(series dynamo.SampleSeries, terminal, fraction float64) (t float64, ok bool) {
	if math.IsInf(terminal, 0) || math.IsNaN(terminal) || terminal <= 0 {
		return 0, false
	}
	threshold := terminal * fraction
	for i := 0; i < series.Len(); i++ {
		s := series.At(i)
		if math.Abs(s.Velocity) >= threshold {
			return s.Time, true
		}
	}
	return 0, false
}
