package app

import (
	"errors"
	"fmt"
)

// ActionError is a failed file or MIDI operation. It is logged and shown to the user
// as an error notice; it never ends the program.
type ActionError struct {
	Action Action
	Path   string
	Err    error
}

func (e *ActionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Action, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Action, e.Path, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// IsActionError checks if an error is an ActionError.
func IsActionError(err error) bool {
	var actionErr *ActionError
	return errors.As(err, &actionErr)
}
