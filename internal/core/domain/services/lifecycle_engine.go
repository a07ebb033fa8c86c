package services

import (
	"fmt"
	"time"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/pkg/errs"
)

// Payload carries the action specific input of a transition.
type Payload struct {
	// ProofRef is the blob-store reference of an uploaded delivery proof.
	ProofRef string
}

// LifecycleEngine is the stateless entry point of the order state machine. It
// maps a requested action onto the aggregate method that performs it, so that
// callers can drive any transition through one operation.
//
// Refund actions are not handled here: they create or resolve a refund request
// and go through RefundWorkflow instead.
//
// Example usage:
//
//	engine := services.NewLifecycleEngine()
//	err := engine.Apply(o, rider, order.Pickup, services.Payload{}, time.Now())
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // someone else already picked the order up
//	}
type LifecycleEngine struct{}

func NewLifecycleEngine() LifecycleEngine {
	return LifecycleEngine{}
}

// Apply performs action a on o on behalf of by.
//
// Returns:
//   - nil when the order accepted the action
//   - ForbiddenError, InvalidTransitionError or PreconditionFailedError from the aggregate
//   - ValueIsInvalidError for refund actions and unknown actions
func (e LifecycleEngine) Apply(o *order.Order, by actor.Actor, a order.Action, p Payload, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	switch a { //nolint:exhaustive // refund actions fall through to the error below
	case order.MarkAwaitingCourier:
		return o.MarkAwaitingCourier(by, at)
	case order.Pickup:
		return o.Pickup(by, at)
	case order.AttachProof:
		return o.AttachProof(by, p.ProofRef, at)
	case order.UploadProofAndDeliver:
		return o.UploadProofAndDeliver(by, p.ProofRef, at)
	case order.ConfirmReceived:
		return o.ConfirmReceived(by, at)
	case order.Cancel:
		return o.Cancel(by, at)
	}

	if err := a.Validate(); err != nil {
		return err
	}
	return errs.NewValueIsInvalidErrorWithCause("action",
		fmt.Errorf("%s is handled by the refund workflow", a))
}

// Check runs the capability, relationship and edge checks of a without
// mutating o. A nil result does not guarantee Apply succeeds: preconditions
// are only evaluated by Apply.
func (e LifecycleEngine) Check(o *order.Order, by actor.Actor, a order.Action) error {
	if !e.Supports(a) {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%s is not a lifecycle action", a))
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.Authorize(by, a); err != nil {
		return err
	}
	if len(o.Status().Targets(a)) == 0 {
		return errs.NewInvalidTransitionError(a.String(), o.Status().String())
	}
	return nil
}

// Supports reports whether Apply handles a.
func (e LifecycleEngine) Supports(a order.Action) bool {
	switch a { //nolint:exhaustive // everything else is unsupported
	case order.MarkAwaitingCourier, order.Pickup, order.AttachProof,
		order.UploadProofAndDeliver, order.ConfirmReceived, order.Cancel:
		return true
	default:
		return false
	}
}
