package config

import (
	"fmt"
	"math"
	"os"

	"github.com/san-kum/freefall/internal/dynamo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt           = 0.01
	DefaultHeight       = 400.0
	DefaultSampleStride = 10
	DefaultGravity      = 9.81

	DefaultDragCoefficient = 0.47
	DefaultMass            = 0.0577
	DefaultRadius          = 0.06661 / 2
	DefaultFluidDensity    = 1.22
)

type Config struct {
	Models       []string        `yaml:"models"`
	Object       ObjectConfig    `yaml:"object"`
	Planet       PlanetConfig    `yaml:"planet"`
	InitState    InitStateConfig `yaml:"init_state"`
	Dt           float64         `yaml:"dt"`
	SampleStride int             `yaml:"sample_stride"`
	FinishTime   float64         `yaml:"finish_time"`
	Verbose      bool            `yaml:"verbose"`
}

type ObjectConfig struct {
	DragCoefficient float64 `yaml:"drag_coefficient"`
	Mass            float64 `yaml:"mass"`
	Radius          float64 `yaml:"radius"`
	FluidDensity    float64 `yaml:"fluid_density"`
}

type PlanetConfig struct {
	GravitationalConstant float64 `yaml:"gravitational_constant"`
	Mass                  float64 `yaml:"mass"`
	Radius                float64 `yaml:"radius"`
	SurfaceGravity        float64 `yaml:"surface_gravity"`
}

type InitStateConfig struct {
	Height   float64 `yaml:"height"`
	Velocity float64 `yaml:"velocity"`
}

func DefaultConfig() *Config {
	earth := dynamo.Earth()
	return &Config{
		Models: []string{"constant", "newton"},
		Object: ObjectConfig{
			DragCoefficient: DefaultDragCoefficient,
			Mass:            DefaultMass,
			Radius:          DefaultRadius,
			FluidDensity:    DefaultFluidDensity,
		},
		Planet: PlanetConfig{
			GravitationalConstant: earth.G,
			Mass:                  earth.Mass,
			Radius:                earth.Radius,
			SurfaceGravity:        DefaultGravity,
		},
		InitState:    InitStateConfig{Height: DefaultHeight},
		Dt:           DefaultDt,
		SampleStride: DefaultSampleStride,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults, so omitted keys keep default values.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Profile() dynamo.ObjectProfile {
	return dynamo.ObjectProfile{
		DragCoefficient: c.Object.DragCoefficient,
		Mass:            c.Object.Mass,
		Radius:          c.Object.Radius,
		FluidDensity:    c.Object.FluidDensity,
	}
}

func (c *Config) Simulation() dynamo.SimulationConfig {
	return dynamo.SimulationConfig{
		Planet: dynamo.Planet{
			G:              c.Planet.GravitationalConstant,
			Mass:           c.Planet.Mass,
			Radius:         c.Planet.Radius,
			SurfaceGravity: c.Planet.SurfaceGravity,
		},
		Position:     c.InitState.Height,
		Velocity:     c.InitState.Velocity,
		Dt:           c.Dt,
		SampleStride: c.SampleStride,
		FinishTime:   c.FinishTime,
	}
}

func (c *Config) Validate() error {
	if len(c.Models) == 0 {
		return fmt.Errorf("%w: no models selected", dynamo.ErrInvalidConfig)
	}
	return dynamo.Validate(c.Profile(), c.Simulation())
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Models = append([]string(nil), c.Models...)
	return &cp
}

// ParamNames lists the keys accepted by SetParam.
var ParamNames = []string{"height", "velocity", "mass", "radius", "drag_coefficient", "fluid_density", "gravity", "dt", "finish_time", "sample_stride"}

func (c *Config) GetParams() map[string]float64 {
	return map[string]float64{
		"height":           c.InitState.Height,
		"velocity":         c.InitState.Velocity,
		"mass":             c.Object.Mass,
		"radius":           c.Object.Radius,
		"drag_coefficient": c.Object.DragCoefficient,
		"fluid_density":    c.Object.FluidDensity,
		"gravity":          c.Planet.SurfaceGravity,
		"dt":               c.Dt,
		"finish_time":      c.FinishTime,
		"sample_stride":    float64(c.SampleStride),
	}
}

func (c *Config) SetParam(name string, value float64) error {
	switch name {
	case "height":
		c.InitState.Height = value
	case "velocity":
		c.InitState.Velocity = value
	case "mass":
		c.Object.Mass = value
	case "radius":
		c.Object.Radius = value
	case "drag_coefficient":
		c.Object.DragCoefficient = value
	case "fluid_density":
		c.Object.FluidDensity = value
	case "gravity":
		c.Planet.SurfaceGravity = value
	case "dt":
		c.Dt = value
	case "finish_time":
		c.FinishTime = value
	case "sample_stride":
		if value != math.Trunc(value) || math.IsInf(value, 0) {
			return fmt.Errorf("sample_stride must be a whole number, got %g", value)
		}
		c.SampleStride = int(value)
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
