package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/freefall/internal/dynamo"
)

type Config struct {
	Model   string
	Profile dynamo.ObjectProfile
	Sim     dynamo.SimulationConfig
}

// Experiment binds one profile and config to a gravity variant. Each
// experiment owns its copies, so several may run concurrently.
type Experiment struct {
	cfg       Config
	simulator *dynamo.Simulator
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(model dynamo.ForceModel, integrator dynamo.Integrator, metrics []dynamo.Metric, observers ...dynamo.Observer) error {
	if err := dynamo.Validate(e.cfg.Profile, e.cfg.Sim); err != nil {
		return err
	}
	e.simulator = dynamo.New(model, integrator)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	for _, o := range observers {
		e.simulator.AddObserver(o)
	}
	return nil
}

func (e *Experiment) Name() string { return e.cfg.Model }

func (e *Experiment) Run(ctx context.Context) (*dynamo.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment %s not setup", e.cfg.Model)
	}
	return e.simulator.Run(ctx, e.cfg.Profile, e.cfg.Sim)
}
