package errs

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("transition is invalid")

// InvalidTransitionError reports that From has no outgoing edge for Action.
type InvalidTransitionError struct {
	Action string
	From   string
}

func NewInvalidTransitionError(action, from string) *InvalidTransitionError {
	return &InvalidTransitionError{
		Action: action,
		From:   from,
	}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s is not allowed from %s", ErrInvalidTransition, e.Action, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
