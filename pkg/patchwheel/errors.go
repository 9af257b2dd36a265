package patchwheel

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the user dismissed a dialog (pressed back, Cancel, etc.).
// This is a normal flow control error, not an infrastructure failure.
var ErrCancelled = errors.New("operation cancelled by user")

// InfrastructureError represents a failure of the UI plumbing itself (window creation,
// fonts, rendering) as opposed to a failed browser action. These errors end the program.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_icons")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("patchwheel: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("patchwheel: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
