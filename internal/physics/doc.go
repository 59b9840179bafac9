// Package physics provides the force laws for a body falling through a fluid.
//
// The laws are pure functions of an [dynamo.ObjectProfile] and a
// [dynamo.Snapshot]:
//
//   - [Drag]: Cd * rho * v^2 * pi * r^2
//   - [WeightConstant]: m * g
//   - [WeightNewton]: G * M * m / (R + x)^2
//
// Two gravity variants wrap them as [dynamo.ForceModel] implementations:
// [ConstantGravity] and [NewtonGravity].
//
//	model := physics.NewNewtonGravity()
//	s := dynamo.New(model, integrators.NewMixedEuler())
package physics
