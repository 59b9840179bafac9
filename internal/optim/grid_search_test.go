package optim

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/freefall/internal/config"
	"github.com/san-kum/freefall/internal/dynamo"
	"github.com/san-kum/freefall/internal/experiment"
)

func builder(t *testing.T) func(map[string]float64) (dynamo.Runner, error) {
	registry := experiment.NewRegistry()
	return func(params map[string]float64) (dynamo.Runner, error) {
		cfg := config.DefaultConfig()
		for k, v := range params {
			if err := cfg.SetParam(k, v); err != nil {
				return nil, err
			}
		}
		runners, err := registry.Build([]string{"constant"}, cfg.Profile(), cfg.Simulation(), nil)
		if err != nil {
			return nil, err
		}
		return runners[0], nil
	}
}

func TestGridSearch(t *testing.T) {
	g := NewGridSearch([]string{"height", "mass"}, [][]float64{{40, 100}, {0.0577, 0.1}})
	if g.Size() != 4 {
		t.Fatalf("expected 4 cells, got %d", g.Size())
	}

	points, best, err := g.Search(context.Background(), builder(t), "last_sample_time")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(points))
	}

	// a lower drop lands sooner
	if best.Params["height"] != 40 {
		t.Errorf("expected best height 40, got %v", best.Params["height"])
	}
	for _, p := range points {
		if p.Value < best.Value {
			t.Errorf("point %v beats best %v", p.Value, best.Value)
		}
	}
}

func TestGridSearchInvalidPoint(t *testing.T) {
	g := NewGridSearch([]string{"mass"}, [][]float64{{0.1, 0}})
	_, _, err := g.Search(context.Background(), builder(t), "last_sample_time")
	if !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestGridSearchUnknownMetric(t *testing.T) {
	g := NewGridSearch([]string{"height"}, [][]float64{{40}})
	if _, _, err := g.Search(context.Background(), builder(t), "nope"); err == nil {
		t.Error("expected error for unknown metric")
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		spec   string
		name   string
		values []float64
		ok     bool
	}{
		{"height=40,100,400", "height", []float64{40, 100, 400}, true},
		{"mass=0:1:3", "mass", []float64{0, 0.5, 1}, true},
		{"dt=0.01:0.02:1", "dt", []float64{0.01}, true},
		{"height", "", nil, false},
		{"=1,2", "", nil, false},
		{"height=a,b", "", nil, false},
		{"mass=0:1:0", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			name, values, err := ParseRange(tt.spec)
			if (err == nil) != tt.ok {
				t.Fatalf("ParseRange(%q) error = %v, want ok=%v", tt.spec, err, tt.ok)
			}
			if !tt.ok {
				return
			}
			if name != tt.name || len(values) != len(tt.values) {
				t.Fatalf("got %s %v, want %s %v", name, values, tt.name, tt.values)
			}
			for i := range values {
				if values[i] != tt.values[i] {
					t.Errorf("value %d = %v, want %v", i, values[i], tt.values[i])
				}
			}
		})
	}
}
