// Package analysis inspects finished drops.
//
//   - [NewPhasePortrait]: height against speed for every sample
//   - [ApproachTime]: first sample at which the speed reaches a fraction of terminal velocity
//
// A portrait renders as text with [PhasePortrait.ASCII]:
//
//	portrait := analysis.NewPhasePortrait(res.Series)
//	fmt.Print(portrait.ASCII(60, 20))
package analysis
