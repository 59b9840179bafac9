package config

import (
	"sort"

	"github.com/san-kum/freefall/internal/dynamo"
)

var (
	tennisBall = ObjectConfig{
		DragCoefficient: DefaultDragCoefficient,
		Mass:            DefaultMass,
		Radius:          DefaultRadius,
		FluidDensity:    DefaultFluidDensity,
	}
	earth = PlanetConfig{
		GravitationalConstant: dynamo.Earth().G,
		Mass:                  dynamo.Earth().Mass,
		Radius:                dynamo.Earth().Radius,
		SurfaceGravity:        DefaultGravity,
	}
	moon = PlanetConfig{
		GravitationalConstant: dynamo.Earth().G,
		Mass:                  7.35e22,
		Radius:                1.737e6,
		SurfaceGravity:        1.62,
	}
)

var Presets = map[string]map[string]*Config{
	"tennis_ball": {
		"tall": {
			Models: []string{"constant", "newton"}, Object: tennisBall, Planet: earth,
			InitState: InitStateConfig{Height: 400}, Dt: 0.01, SampleStride: 10,
		},
		"short": {
			Models: []string{"constant", "newton"}, Object: tennisBall, Planet: earth,
			InitState: InitStateConfig{Height: 40}, Dt: 0.01, SampleStride: 10,
		},
		"cutoff": {
			Models: []string{"constant", "newton"}, Object: tennisBall, Planet: earth,
			InitState: InitStateConfig{Height: 400}, Dt: 0.01, SampleStride: 10, FinishTime: 3,
		},
	},
	"skydiver": {
		"jump": {
			Models: []string{"constant", "newton"},
			Object: ObjectConfig{DragCoefficient: 1.0, Mass: 80, Radius: 0.4, FluidDensity: DefaultFluidDensity},
			Planet: earth, InitState: InitStateConfig{Height: 4000}, Dt: 0.01, SampleStride: 100,
		},
	},
	"moon": {
		"vacuum": {
			Models: []string{"constant", "newton"},
			Object: ObjectConfig{DragCoefficient: DefaultDragCoefficient, Mass: DefaultMass, Radius: DefaultRadius, FluidDensity: 0},
			Planet: moon, InitState: InitStateConfig{Height: 100}, Dt: 0.01, SampleStride: 10,
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(object, preset string) *Config {
	objectPresets, ok := Presets[object]
	if !ok {
		return nil
	}
	cfg, ok := objectPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(object string) []string {
	objectPresets, ok := Presets[object]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(objectPresets))
	for name := range objectPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListObjects() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
