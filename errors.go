package vitecn

import (
	"errors"
	"fmt"
)

// ErrNotProjectRoot is returned when the working directory does not look like
// the root of a Vite app.
var ErrNotProjectRoot = errors.New("src/ directory not found; make sure you are in the root of a Vite app")

// StepError wraps the failure of one pipeline step.
type StepError struct {
	Step State
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
