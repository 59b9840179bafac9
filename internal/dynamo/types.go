package dynamo

import (
	"context"
	"math"
)

// ObjectProfile describes the falling body. It does not change during a run.
type ObjectProfile struct {
	DragCoefficient float64 // Cd, dimensionless
	Mass            float64 // kg
	Radius          float64 // m
	FluidDensity    float64 // kg/m^3
}

// Planet holds the gravitational constants. G, Mass and Radius are used by
// the Newtonian model only, SurfaceGravity by the constant model only.
type Planet struct {
	G              float64 // N m^2/kg^2
	Mass           float64 // kg
	Radius         float64 // m
	SurfaceGravity float64 // m/s^2
}

// Earth returns the default planet constants.
func Earth() Planet {
	return Planet{
		G:              6.673e-11,
		Mass:           5.98e24,
		Radius:         6.38e6,
		SurfaceGravity: 9.8,
	}
}

// SimulationConfig is the initial state plus the loop settings of one run.
// Position is height above ground; Velocity is positive while falling.
type SimulationConfig struct {
	Planet       Planet
	Position     float64
	Velocity     float64
	Dt           float64
	SampleStride int
	// FinishTime stops the run once the elapsed time of a sampling tick
	// exceeds it. Zero means unbounded; negative values are invalid.
	FinishTime float64
}

// Snapshot is the immutable view of the evolving state handed to force laws.
type Snapshot struct {
	Planet   Planet
	Position float64
	Velocity float64
}

func (c SimulationConfig) Snapshot() Snapshot {
	return Snapshot{Planet: c.Planet, Position: c.Position, Velocity: c.Velocity}
}

func (s Snapshot) IsValid() bool {
	return !badFloat(s.Position) && !badFloat(s.Velocity)
}

func badFloat(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// Sample is one recorded tick.
type Sample struct {
	Time     float64
	Position float64
	Velocity float64
	NetForce float64
}

// SampleSeries holds four parallel sequences of equal length, in increasing
// time order.
type SampleSeries struct {
	Time     []float64
	Velocity []float64
	NetForce []float64
	Position []float64
}

func (s *SampleSeries) Append(smp Sample) {
	s.Time = append(s.Time, smp.Time)
	s.Velocity = append(s.Velocity, smp.Velocity)
	s.NetForce = append(s.NetForce, smp.NetForce)
	s.Position = append(s.Position, smp.Position)
}

func (s *SampleSeries) Len() int { return len(s.Time) }

// At returns the i-th sample.
func (s *SampleSeries) At(i int) Sample {
	return Sample{Time: s.Time[i], Position: s.Position[i], Velocity: s.Velocity[i], NetForce: s.NetForce[i]}
}

// ForceModel supplies the two force laws summed each tick. Drag returns a
// non-negative magnitude; the simulator applies it against the fall.
type ForceModel interface {
	Name() string
	Drag(p ObjectProfile, s Snapshot) float64
	Weight(p ObjectProfile, s Snapshot) (float64, error)
}

// Integrator advances height and velocity by one tick given the acceleration
// computed from the state at the start of the tick.
type Integrator interface {
	Step(position, velocity, acceleration, dt float64) (float64, float64)
}

type Observer interface {
	OnSample(s Sample)
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// Runner is a runnable simulation variant. Callers invoke any variant
// through this one call shape.
type Runner interface {
	Name() string
	Run(ctx context.Context) (*Result, error)
}

type Termination string

const (
	TerminatedGround Termination = "ground"
	TerminatedCutoff Termination = "cutoff"
)

type Result struct {
	Model      string
	Series     SampleSeries
	Metrics    map[string]float64
	Steps      int
	Terminated Termination
}
