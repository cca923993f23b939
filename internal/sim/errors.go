package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTimestep indicates a non-positive dt.
	ErrInvalidTimestep = errors.New("sim: timestep must be positive")

	// ErrInvalidSteps indicates a non-positive step count for a batch run.
	ErrInvalidSteps = errors.New("sim: step count must be positive")

	// ErrInvalidState indicates a NaN or Inf crept into a batch run's state.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")
)

// StepError wraps an error with the step it occurred on.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
