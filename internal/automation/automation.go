package automation

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/freefall/internal/config"
	"github.com/san-kum/freefall/internal/dynamo"
	"github.com/san-kum/freefall/internal/experiment"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted batch of drops.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Parallel    bool           `yaml:"parallel"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep starts from a preset ("object/preset") or the defaults and
// applies param overrides.
type ScenarioStep struct {
	Label  string             `yaml:"label"`
	Preset string             `yaml:"preset"`
	Models []string           `yaml:"models"`
	Params map[string]float64 `yaml:"params"`
}

// StepResult is one model's run within a step.
type StepResult struct {
	Label  string
	Result *dynamo.Result
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	return &scenario, nil
}

// StepConfig resolves the configuration of one step.
func StepConfig(step ScenarioStep) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if step.Preset != "" {
		object, name, ok := strings.Cut(step.Preset, "/")
		if !ok {
			return nil, fmt.Errorf("preset %q must be object/preset", step.Preset)
		}
		cfg = config.GetPreset(object, name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", step.Preset)
		}
	}
	if len(step.Models) > 0 {
		cfg.Models = step.Models
	}
	for k, v := range step.Params {
		if err := cfg.SetParam(k, v); err != nil {
			return nil, err
		}
	}
	return cfg, cfg.Validate()
}

// RunScenario executes every step, in parallel when the scenario asks for it.
// Results are returned in step order, then model order.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry) ([]StepResult, error) {
	var runners []dynamo.Runner
	var labels []string

	for i, step := range scenario.Steps {
		cfg, err := StepConfig(step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}

		stepRunners, err := registry.Build(cfg.Models, cfg.Profile(), cfg.Simulation(), nil)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}

		label := step.Label
		if label == "" {
			label = fmt.Sprintf("step%d", i+1)
		}
		for range stepRunners {
			labels = append(labels, label)
		}
		runners = append(runners, stepRunners...)
	}

	run := dynamo.RunEach
	if scenario.Parallel {
		run = dynamo.RunAll
	}
	results, err := run(ctx, runners)
	if err != nil {
		return nil, err
	}

	out := make([]StepResult, len(results))
	for i, res := range results {
		out[i] = StepResult{Label: labels[i], Result: res}
	}
	return out, nil
}
