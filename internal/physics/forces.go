package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/freefall/internal/dynamo"
)

// Drag is the drag magnitude on the body. It is never negative.
func Drag(p dynamo.ObjectProfile, s dynamo.Snapshot) float64 {
	return p.DragCoefficient * p.FluidDensity * s.Velocity * s.Velocity * math.Pi * p.Radius * p.Radius
}

// WeightConstant is m*g with the planet's surface gravity.
func WeightConstant(p dynamo.ObjectProfile, s dynamo.Snapshot) float64 {
	return p.Mass * s.Planet.SurfaceGravity
}

// WeightNewton is the inverse-square attraction at the current height. It
// fails when the body sits at the planet's centre.
func WeightNewton(p dynamo.ObjectProfile, s dynamo.Snapshot) (float64, error) {
	r := s.Planet.Radius + s.Position
	if r == 0 {
		return 0, fmt.Errorf("%w: distance to planet centre is zero", dynamo.ErrSingularity)
	}
	return s.Planet.G * s.Planet.Mass * p.Mass / (r * r), nil
}

// TerminalVelocity is the speed at which drag balances weight for a constant
// gravity g. It is +Inf when the fluid offers no drag.
func TerminalVelocity(p dynamo.ObjectProfile, g float64) float64 {
	k := p.DragCoefficient * p.FluidDensity * math.Pi * p.Radius * p.Radius
	if k == 0 {
		return math.Inf(1)
	}
	return math.Sqrt(p.Mass * g / k)
}

// SurfaceGravity is G*M/R^2.
func SurfaceGravity(pl dynamo.Planet) float64 {
	return pl.G * pl.Mass / (pl.Radius * pl.Radius)
}
