package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidConfig indicates a profile or config that cannot be integrated.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrSingularity indicates a division by zero in a force law or in the
	// elapsed-time estimate.
	ErrSingularity = errors.New("dynamo: numeric singularity")

	// ErrStalled indicates the body can no longer reach the ground: it is at
	// rest or rising while the net force does not point down.
	ErrStalled = errors.New("dynamo: body will not reach the ground")

	// ErrDiverged indicates the state or net force became NaN or Inf.
	ErrDiverged = errors.New("dynamo: simulation diverged (NaN or Inf detected)")
)

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	State   Snapshot
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f, height=%.4f): %v", e.Step, e.Time, e.State.Position, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}
