package errs

import (
	"errors"
	"fmt"
)

var ErrPreconditionFailed = errors.New("precondition failed")

// PreconditionFailedError reports a transition whose edge exists but whose
// guard condition does not hold yet.
type PreconditionFailedError struct {
	ParamName string
	Reason    string
}

func NewPreconditionFailedError(paramName, reason string) *PreconditionFailedError {
	return &PreconditionFailedError{
		ParamName: paramName,
		Reason:    reason,
	}
}

func (e *PreconditionFailedError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrPreconditionFailed, e.ParamName, e.Reason)
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}
