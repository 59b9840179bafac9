package physics

import "github.com/san-kum/freefall/internal/dynamo"

type fluidDrag struct{}

func (fluidDrag) Drag(p dynamo.ObjectProfile, s dynamo.Snapshot) float64 {
	return Drag(p, s)
}

// ConstantGravity pulls with m*g regardless of height.
type ConstantGravity struct {
	fluidDrag
}

func NewConstantGravity() *ConstantGravity {
	return &ConstantGravity{}
}

func (c *ConstantGravity) Name() string { return "constant" }

func (c *ConstantGravity) Weight(p dynamo.ObjectProfile, s dynamo.Snapshot) (float64, error) {
	return WeightConstant(p, s), nil
}

// NewtonGravity pulls with G*M*m/(R+x)^2, weakening with height.
type NewtonGravity struct {
	fluidDrag
}

func NewNewtonGravity() *NewtonGravity {
	return &NewtonGravity{}
}

func (n *NewtonGravity) Name() string { return "newton" }

func (n *NewtonGravity) Weight(p dynamo.ObjectProfile, s dynamo.Snapshot) (float64, error) {
	return WeightNewton(p, s)
}
