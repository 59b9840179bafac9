package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/freefall/internal/dynamo"
)

var ball = dynamo.ObjectProfile{
	DragCoefficient: 0.47,
	Mass:            0.0577,
	Radius:          0.06661 / 2,
	FluidDensity:    1.22,
}

func TestDrag(t *testing.T) {
	tests := []struct {
		name     string
		velocity float64
		expected float64
	}{
		{"at rest", 0, 0},
		{"falling", 10, 0.47 * 1.22 * 100 * math.Pi * 0.033305 * 0.033305},
		{"rising", -10, 0.47 * 1.22 * 100 * math.Pi * 0.033305 * 0.033305},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Drag(ball, dynamo.Snapshot{Velocity: tt.velocity})
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Drag() = %v, want %v", got, tt.expected)
			}
			if got < 0 {
				t.Errorf("drag must not be negative, got %v", got)
			}
		})
	}
}

func TestWeightConstant(t *testing.T) {
	s := dynamo.Snapshot{Planet: dynamo.Planet{SurfaceGravity: 9.81}, Position: 1e6}
	got := WeightConstant(ball, s)
	if math.Abs(got-0.0577*9.81) > 1e-12 {
		t.Errorf("expected %v, got %v", 0.0577*9.81, got)
	}
}

func TestWeightNewton(t *testing.T) {
	earth := dynamo.Earth()

	surface, err := WeightNewton(ball, dynamo.Snapshot{Planet: earth})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := ball.Mass * SurfaceGravity(earth)
	if math.Abs(surface-expected) > 1e-12 {
		t.Errorf("expected %v at surface, got %v", expected, surface)
	}

	high, err := WeightNewton(ball, dynamo.Snapshot{Planet: earth, Position: 1e6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high >= surface {
		t.Errorf("weight should drop with height: surface %v, 1000km %v", surface, high)
	}
}

func TestWeightNewtonSingularity(t *testing.T) {
	s := dynamo.Snapshot{Planet: dynamo.Earth(), Position: -dynamo.Earth().Radius}
	_, err := WeightNewton(ball, s)
	if !errors.Is(err, dynamo.ErrSingularity) {
		t.Errorf("expected ErrSingularity, got %v", err)
	}
}

func TestTerminalVelocity(t *testing.T) {
	vt := TerminalVelocity(ball, 9.81)

	drag := Drag(ball, dynamo.Snapshot{Velocity: vt})
	weight := WeightConstant(ball, dynamo.Snapshot{Planet: dynamo.Planet{SurfaceGravity: 9.81}})
	if math.Abs(drag-weight) > 1e-9 {
		t.Errorf("drag %v should balance weight %v at terminal velocity", drag, weight)
	}

	vacuum := ball
	vacuum.FluidDensity = 0
	if !math.IsInf(TerminalVelocity(vacuum, 9.81), 1) {
		t.Error("expected +Inf terminal velocity in vacuum")
	}
}

func TestSurfaceGravity(t *testing.T) {
	g := SurfaceGravity(dynamo.Earth())
	if math.Abs(g-9.8) > 0.01 {
		t.Errorf("expected earth surface gravity ~9.8, got %v", g)
	}
}

func TestModelNames(t *testing.T) {
	var models = []dynamo.ForceModel{NewConstantGravity(), NewNewtonGravity()}
	names := []string{"constant", "newton"}
	for i, m := range models {
		if m.Name() != names[i] {
			t.Errorf("expected %s, got %s", names[i], m.Name())
		}
	}
}
