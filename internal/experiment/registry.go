package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/freefall/internal/dynamo"
	"github.com/san-kum/freefall/internal/integrators"
	"github.com/san-kum/freefall/internal/metrics"
	"github.com/san-kum/freefall/internal/physics"
)

type Registry struct {
	models      map[string]func() dynamo.ForceModel
	integrators map[string]func() dynamo.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		models:      make(map[string]func() dynamo.ForceModel),
		integrators: make(map[string]func() dynamo.Integrator),
	}

	r.models["constant"] = func() dynamo.ForceModel { return physics.NewConstantGravity() }
	r.models["newton"] = func() dynamo.ForceModel { return physics.NewNewtonGravity() }

	r.integrators["euler"] = func() dynamo.Integrator { return integrators.NewMixedEuler() }

	return r
}

func (r *Registry) GetModel(name string) (dynamo.ForceModel, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build returns one ready runner per model name, each with its own metrics
// and a private copy of the profile and config.
func (r *Registry) Build(models []string, profile dynamo.ObjectProfile, sim dynamo.SimulationConfig, observers func(model string) []dynamo.Observer) ([]dynamo.Runner, error) {
	runners := make([]dynamo.Runner, 0, len(models))
	for _, name := range models {
		model, err := r.GetModel(name)
		if err != nil {
			return nil, err
		}
		integ, err := r.GetIntegrator("euler")
		if err != nil {
			return nil, err
		}

		var obs []dynamo.Observer
		if observers != nil {
			obs = observers(name)
		}

		exp := New(Config{Model: name, Profile: profile, Sim: sim})
		if err := exp.Setup(model, integ, metrics.Defaults(), obs...); err != nil {
			return nil, err
		}
		runners = append(runners, exp)
	}
	return runners, nil
}
