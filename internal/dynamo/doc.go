// Package dynamo provides the core primitives for falling-body simulation.
//
// The package defines the data carried through a run and the stepping loop
// that evolves it:
//
//   - [ObjectProfile]: drag coefficient, mass, radius and fluid density
//   - [SimulationConfig]: planet constants, initial state and loop settings
//   - [ForceModel]: drag plus one gravity law
//   - [Integrator]: tick update scheme
//   - [Simulator]: drives the loop and fills a [SampleSeries]
//
// # Example
//
//	s := dynamo.New(physics.NewConstantGravity(), integrators.NewMixedEuler())
//	result, err := s.Run(ctx, profile, cfg)
//
// # Thread Safety
//
// A Simulator holds no per-run state, but observers and metrics attached to it
// do. Use [RunAll] with independent runners to execute several runs at once.
package dynamo
