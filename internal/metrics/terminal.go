package metrics

import (
	"math"

	"github.com/san-kum/freefall/internal/dynamo"
)

// TerminalSamples counts samples whose net force rounds to zero at the given
// precision, i.e. samples taken at terminal velocity.
type TerminalSamples struct {
	name      string
	precision float64
	count     int
}

func NewTerminalSamples(precision float64) *TerminalSamples {
	return &TerminalSamples{name: "terminal_samples", precision: precision}
}

func (m *TerminalSamples) Name() string { return m.name }

func (m *TerminalSamples) Observe(s dynamo.Sample) {
	if dynamo.RoundTo(s.NetForce, m.precision) == 0 {
		m.count++
	}
}

func (m *TerminalSamples) Value() float64 { return float64(m.count) }

func (m *TerminalSamples) Reset() { m.count = 0 }

// CountTerminal applies the TerminalSamples rule to a finished series.
func CountTerminal(series dynamo.SampleSeries, precision float64) int {
	n := 0
	for _, f := range series.NetForce {
		if dynamo.RoundTo(f, precision) == 0 {
			n++
		}
	}
	return n
}

// PeakSpeed tracks the largest reported speed.
type PeakSpeed struct {
	name string
	peak float64
}

func NewPeakSpeed() *PeakSpeed {
	return &PeakSpeed{name: "peak_speed"}
}

func (m *PeakSpeed) Name() string { return m.name }

func (m *PeakSpeed) Observe(s dynamo.Sample) {
	m.peak = math.Max(m.peak, math.Abs(s.Velocity))
}

func (m *PeakSpeed) Value() float64 { return m.peak }

func (m *PeakSpeed) Reset() { m.peak = 0 }
