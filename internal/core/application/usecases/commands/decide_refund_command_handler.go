package commands

import (
	"context"
	"time"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/core/domain/model/refund"
	"shipment/internal/core/domain/services"
)

type decideFunc func(o *order.Order, r *refund.Request, by actor.Actor, at time.Time) error

// refundDecider resolves a request and its order together. Both writes are
// conditional on the statuses read before the decision.
type refundDecider struct {
	uowFactory UoWFactory
	now        func() time.Time
}

func (d refundDecider) decide(ctx context.Context, dec refundDecision, apply decideFunc) (RefundOutcome, error) {
	uow := d.uowFactory.Create()

	r, err := uow.RefundRepository().Get(ctx, dec.RequestID())
	if err != nil {
		return RefundOutcome{}, err
	}
	o, err := uow.OrderRepository().Get(ctx, r.OrderID())
	if err != nil {
		return RefundOutcome{}, err
	}
	expectedOrder, expectedRequest := o.Status(), r.Status()

	if err = apply(o, r, dec.By(), d.now()); err != nil {
		return RefundOutcome{}, err
	}

	if err = uow.Begin(ctx); err != nil {
		return RefundOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RefundRepository().UpdateIfStatus(ctx, r, expectedRequest); err != nil {
		return RefundOutcome{}, err
	}
	if err = uow.OrderRepository().UpdateIfStatus(ctx, o, expectedOrder); err != nil {
		return RefundOutcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RefundOutcome{}, err
	}

	return RefundOutcome{Order: NewOrderView(o), Refund: NewRefundView(r)}, nil
}

// ApproveRefundCommandHandler moves the order to Refund or Replace, as the
// buyer asked, and marks the request Approved.
type ApproveRefundCommandHandler struct {
	decider  refundDecider
	workflow services.RefundWorkflow
}

func NewApproveRefundCommandHandler(uowFactory UoWFactory) ApproveRefundCommandHandler {
	return ApproveRefundCommandHandler{
		decider:  refundDecider{uowFactory: uowFactory, now: time.Now},
		workflow: services.NewRefundWorkflow(),
	}
}

func (h ApproveRefundCommandHandler) Handle(ctx context.Context, cmd ApproveRefundCommand) (RefundOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return RefundOutcome{}, err
	}
	return h.decider.decide(ctx, cmd.refundDecision, h.workflow.Approve)
}

// RejectRefundCommandHandler returns the order to OrderDelivered and marks the
// request Rejected. The buyer may open a new request afterwards.
type RejectRefundCommandHandler struct {
	decider  refundDecider
	workflow services.RefundWorkflow
}

func NewRejectRefundCommandHandler(uowFactory UoWFactory) RejectRefundCommandHandler {
	return RejectRefundCommandHandler{
		decider:  refundDecider{uowFactory: uowFactory, now: time.Now},
		workflow: services.NewRefundWorkflow(),
	}
}

func (h RejectRefundCommandHandler) Handle(ctx context.Context, cmd RejectRefundCommand) (RefundOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return RefundOutcome{}, err
	}
	return h.decider.decide(ctx, cmd.refundDecision, h.workflow.Reject)
}
