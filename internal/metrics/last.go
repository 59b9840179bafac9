package metrics

import "github.com/san-kum/freefall/internal/dynamo"

// Last records one field of the most recent sample.
type Last struct {
	name  string
	field func(dynamo.Sample) float64
	value float64
}

func NewLastTime() *Last {
	return &Last{name: "last_sample_time", field: func(s dynamo.Sample) float64 { return s.Time }}
}

func NewLastNetForce() *Last {
	return &Last{name: "last_net_force", field: func(s dynamo.Sample) float64 { return s.NetForce }}
}

func (m *Last) Name() string { return m.name }

func (m *Last) Observe(s dynamo.Sample) { m.value = m.field(s) }

func (m *Last) Value() float64 { return m.value }

func (m *Last) Reset() { m.value = 0 }

// Defaults returns the metrics attached to every run.
func Defaults() []dynamo.Metric {
	return []dynamo.Metric{
		NewTerminalSamples(0.01),
		NewPeakSpeed(),
		NewLastTime(),
		NewLastNetForce(),
	}
}
