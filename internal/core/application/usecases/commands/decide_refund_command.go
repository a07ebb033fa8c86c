package commands

import (
	"errors"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/guard"
)

var (
	ErrApproveRefundCommandIsNotConstructed = errors.New(
		"ApproveRefundCommand must be created via NewApproveRefundCommand constructor",
	)
	ErrRejectRefundCommandIsNotConstructed = errors.New(
		"RejectRefundCommand must be created via NewRejectRefundCommand constructor",
	)
)

type refundDecision struct {
	requestID kernel.UUID
	by        actor.Actor

	guard guard.ConstructorGuard
}

func newRefundDecision(requestID kernel.UUID, by actor.Actor) (refundDecision, error) {
	if err := errors.Join(requestID.Validate(), by.Validate()); err != nil {
		return refundDecision{}, err
	}
	return refundDecision{
		requestID: requestID,
		by:        by,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (d refundDecision) RequestID() kernel.UUID {
	return d.requestID
}

func (d refundDecision) By() actor.Actor {
	return d.by
}

// ApproveRefundCommand accepts a pending refund request.
type ApproveRefundCommand struct {
	refundDecision
}

func NewApproveRefundCommand(requestID kernel.UUID, by actor.Actor) (ApproveRefundCommand, error) {
	d, err := newRefundDecision(requestID, by)
	if err != nil {
		return ApproveRefundCommand{}, err
	}
	return ApproveRefundCommand{refundDecision: d}, nil
}

func (c ApproveRefundCommand) Validate() error {
	return c.guard.Validate(ErrApproveRefundCommandIsNotConstructed)
}

// RejectRefundCommand declines a pending refund request.
type RejectRefundCommand struct {
	refundDecision
}

func NewRejectRefundCommand(requestID kernel.UUID, by actor.Actor) (RejectRefundCommand, error) {
	d, err := newRefundDecision(requestID, by)
	if err != nil {
		return RejectRefundCommand{}, err
	}
	return RejectRefundCommand{refundDecision: d}, nil
}

func (c RejectRefundCommand) Validate() error {
	return c.guard.Validate(ErrRejectRefundCommandIsNotConstructed)
}
