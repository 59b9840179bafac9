package dynamo

import (
	"context"
	"math"
)

// Simulator integrates a falling body until it reaches the ground or the
// configured finish time.
type Simulator struct {
	model      ForceModel
	integrator Integrator
	metrics    []Metric
	observers  []Observer
}

func New(model ForceModel, integrator Integrator) *Simulator {
	return &Simulator{
		model:      model,
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run evolves a private copy of cfg and returns the recorded samples. The
// caller's profile and config are never modified.
func (s *Simulator) Run(ctx context.Context, p ObjectProfile, cfg SimulationConfig) (*Result, error) {
	if err := Validate(p, cfg); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{
		Model:      s.model.Name(),
		Metrics:    make(map[string]float64),
		Terminated: TerminatedGround,
	}

	initialHeight := cfg.Position
	x := cfg.Snapshot()
	dt := cfg.Dt

	for x.Position >= 0 {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		weight, err := s.model.Weight(p, x)
		if err != nil {
			return result, s.fail(result.Steps, dt, x, err)
		}
		netForce := -s.model.Drag(p, x) + weight
		acc := netForce / p.Mass

		x.Position, x.Velocity = s.integrator.Step(x.Position, x.Velocity, acc, dt)
		result.Steps++

		if !x.IsValid() || badFloat(netForce) {
			return result, s.fail(result.Steps, dt, x, ErrDiverged)
		}
		if x.Position < 0 {
			break
		}
		if x.Velocity <= 0 && acc <= 0 {
			return result, s.fail(result.Steps, dt, x, ErrStalled)
		}

		if int64(math.Round(x.Position))%int64(cfg.SampleStride) != 0 {
			continue
		}

		if x.Velocity == 0 {
			return result, s.fail(result.Steps, dt, x, ErrSingularity)
		}
		elapsed := RoundTo((initialHeight-x.Position)/x.Velocity, 0.001)
		if cfg.FinishTime > 0 && elapsed > cfg.FinishTime {
			result.Terminated = TerminatedCutoff
			break
		}

		smp := Sample{
			Time:     elapsed,
			Position: x.Position,
			Velocity: -x.Velocity,
			NetForce: netForce,
		}
		result.Series.Append(smp)

		for _, m := range s.metrics {
			m.Observe(smp)
		}
		for _, obs := range s.observers {
			obs.OnSample(smp)
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) fail(step int, dt float64, x Snapshot, err error) error {
	return &SimulationError{Step: step, Time: float64(step) * dt, State: x, Wrapped: err}
}

// Validate rejects profiles and configs the loop cannot integrate.
func Validate(p ObjectProfile, cfg SimulationConfig) error {
	switch {
	case !(p.Mass > 0):
		return invalidf("mass must be positive, got %g", p.Mass)
	case !(p.Radius > 0):
		return invalidf("radius must be positive, got %g", p.Radius)
	case !(p.DragCoefficient > 0):
		return invalidf("drag coefficient must be positive, got %g", p.DragCoefficient)
	case !(p.FluidDensity >= 0):
		return invalidf("fluid density must be non-negative, got %g", p.FluidDensity)
	case !(cfg.Dt > 0) || math.IsInf(cfg.Dt, 0):
		return invalidf("dt must be positive, got %g", cfg.Dt)
	case cfg.SampleStride <= 0:
		return invalidf("sample stride must be positive, got %d", cfg.SampleStride)
	case !(cfg.Position >= 0) || math.IsInf(cfg.Position, 0):
		return invalidf("initial height must be non-negative, got %g", cfg.Position)
	case badFloat(cfg.Velocity):
		return invalidf("initial velocity must be finite, got %g", cfg.Velocity)
	case !(cfg.FinishTime >= 0):
		return invalidf("finish time must be non-negative, got %g", cfg.FinishTime)
	case badFloat(cfg.Planet.G), badFloat(cfg.Planet.Mass), badFloat(cfg.Planet.Radius):
		return invalidf("planet constants must be finite, got G=%g M=%g R=%g", cfg.Planet.G, cfg.Planet.Mass, cfg.Planet.Radius)
	case badFloat(cfg.Planet.SurfaceGravity):
		return invalidf("surface gravity must be finite, got %g", cfg.Planet.SurfaceGravity)
	}
	return nil
}
