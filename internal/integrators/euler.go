package integrators

// MixedEuler updates velocity with the acceleration at the start of the tick
// and moves height down by the old velocity plus the old acceleration term:
//
//	v' = v + a*dt
//	x' = x - v*dt - a*dt^2/2
//
// Velocity is positive downward, so x falls while v > 0.
type MixedEuler struct{}

func NewMixedEuler() *MixedEuler {
	return &MixedEuler{}
}

func (e *MixedEuler) Step(position, velocity, acceleration, dt float64) (float64, float64) {
	newVelocity := velocity + acceleration*dt
	newPosition := position - velocity*dt - 0.5*acceleration*dt*dt
	return newPosition, newVelocity
}
