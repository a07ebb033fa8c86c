// Package boundary is where the core meets its callers. Every action returns
// a Result instead of an error, records itself in the audit log and is
// counted in the metrics.
package boundary

import (
	"errors"

	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/pkg/errs"
)

// ErrorKind is the machine-readable failure category of a Result.
type ErrorKind string

const (
	NoError            ErrorKind = ""
	NotFound           ErrorKind = "NotFound"
	Forbidden          ErrorKind = "Forbidden"
	InvalidTransition  ErrorKind = "InvalidTransition"
	PreconditionFailed ErrorKind = "PreconditionFailed"
	StoreConflict      ErrorKind = "StoreConflict"
	InvalidInput       ErrorKind = "InvalidInput"
	UpstreamFailure    ErrorKind = "UpstreamFailure"
)

// upstreamMessage replaces the text of unclassified errors, which may carry
// driver or network details.
const upstreamMessage = "the service is temporarily unable to complete the request"

// Classify maps an error to its kind. Anything the core does not recognise is
// an UpstreamFailure.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return NoError
	case errors.Is(err, errs.ErrObjectNotFound):
		return NotFound
	case errors.Is(err, errs.ErrForbidden):
		return Forbidden
	case errors.Is(err, errs.ErrConflict):
		return StoreConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		return InvalidTransition
	case errors.Is(err, errs.ErrPreconditionFailed):
		return PreconditionFailed
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return InvalidInput
	default:
		return UpstreamFailure
	}
}

// Result is the uniform outcome of an action. On success Order is always set
// and Refund is set by the refund actions.
type Result struct {
	Success bool                 `json:"success"`
	Order   *commands.OrderView  `json:"order,omitempty"`
	Refund  *commands.RefundView `json:"refund,omitempty"`
	Kind    ErrorKind            `json:"error_kind,omitempty"`
	Message string               `json:"message,omitempty"`

	cause error
}

func Ok(order commands.OrderView) Result {
	return Result{Success: true, Order: &order}
}

func OkRefund(outcome commands.RefundOutcome) Result {
	return Result{Success: true, Order: &outcome.Order, Refund: &outcome.Refund}
}

func Fail(err error) Result {
	kind := Classify(err)
	message := upstreamMessage
	if kind != UpstreamFailure {
		message = err.Error()
	}
	return Result{Kind: kind, Message: message, cause: err}
}

// Err is the error the Result was built from, nil on success.
func (r Result) Err() error {
	return r.cause
}

// Outcome is the audit label of r: "ok" or the error kind.
func (r Result) Outcome() string {
	if r.Success {
		return "ok"
	}
	return string(r.Kind)
}
