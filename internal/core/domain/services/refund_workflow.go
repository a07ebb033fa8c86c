package services

import (
	"time"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/core/domain/model/refund"
	"shipment/internal/pkg/errs"
)

// RefundWorkflow coordinates the order and refund request aggregates through a
// dispute: OrderDelivered -> Pending -> Refund | Replace | OrderDelivered.
//
// Business rules:
//   - only the buyer opens a request, and only on a delivered order
//   - one Pending request per order
//   - only the seller or an admin decides, and only once
type RefundWorkflow struct{}

func NewRefundWorkflow() RefundWorkflow {
	return RefundWorkflow{}
}

// Open creates a request for o and moves o to Pending.
//
// Parameters:
//   - o: the disputed order
//   - by: the caller, who must be the buyer
//   - id: identifier for the new request
//   - claim: reason, solution, return method and optional payment method / image
//   - active: the Pending request already open for o, or nil
//   - at: request time
//
// Checks run in the order Forbidden, InvalidTransition, PreconditionFailed,
// then claim validation.
func (w RefundWorkflow) Open(
	o *order.Order,
	by actor.Actor,
	id kernel.UUID,
	claim refund.Claim,
	active *refund.Request,
	at time.Time,
) (*refund.Request, error) {
	if err := w.CanOpen(o, by, active); err != nil {
		return nil, err
	}

	r, err := refund.NewRequest(id, o, claim, at)
	if err != nil {
		return nil, err
	}
	if err = o.MarkRefundRequested(by, at); err != nil {
		return nil, err
	}
	return r, nil
}

// CanOpen reports whether by may open a request on o without touching either
// aggregate. Callers use it to refuse early, before storing evidence.
func (w RefundWorkflow) CanOpen(o *order.Order, by actor.Actor, active *refund.Request) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.Authorize(by, order.RequestRefund); err != nil {
		return err
	}
	if _, err := o.Status().Next(order.RequestRefund); err != nil {
		return err
	}
	if active != nil && active.Status() == refund.Pending {
		return errs.NewPreconditionFailedError("refund request", "is already pending for this order")
	}
	return nil
}

// Approve accepts r and resolves o into the outcome of r's solution.
func (w RefundWorkflow) Approve(o *order.Order, r *refund.Request, by actor.Actor, at time.Time) error {
	if err := w.checkDecision(o, r, by, order.ApproveRefund); err != nil {
		return err
	}
	if err := o.ApproveRefund(by, r.Solution().Outcome(), at); err != nil {
		return err
	}
	return r.Approve(by, at)
}

// Reject declines r and returns o to OrderDelivered.
func (w RefundWorkflow) Reject(o *order.Order, r *refund.Request, by actor.Actor, at time.Time) error {
	if err := w.checkDecision(o, r, by, order.RejectRefund); err != nil {
		return err
	}
	if err := o.RejectRefund(by, at); err != nil {
		return err
	}
	return r.Reject(by, at)
}

// checkDecision runs every check that must pass before either aggregate is
// touched, so a failed decision leaves both unchanged.
func (w RefundWorkflow) checkDecision(o *order.Order, r *refund.Request, by actor.Actor, a order.Action) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}
	if !r.OrderID().IsEqual(o.ID()) {
		return errs.NewValueIsInvalidError("refund request belongs to another order")
	}
	if err := o.Authorize(by, a); err != nil {
		return err
	}
	if r.Status() != refund.Pending {
		return errs.NewPreconditionFailedError("refund request", "is already processed")
	}
	return nil
}
