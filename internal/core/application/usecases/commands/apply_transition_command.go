package commands

import (
	"errors"
	"fmt"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

var ErrApplyTransitionCommandIsNotConstructed = errors.New(
	"ApplyTransitionCommand must be created via NewApplyTransitionCommand constructor",
)

// ApplyTransitionCommand asks the lifecycle engine to perform one action on an
// order. Proof is only accepted by the actions that store a delivery proof;
// leaving it out for those is reported by the engine as a failed precondition.
type ApplyTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	by      actor.Actor
	action  order.Action
	proof   *ImageUpload

	guard guard.ConstructorGuard
}

func NewApplyTransitionCommand(
	orderID kernel.UUID,
	by actor.Actor,
	action order.Action,
	proof *ImageUpload,
) (ApplyTransitionCommand, error) {
	var proofErr error
	if proof != nil {
		proofErr = proof.Validate()
		if proofErr == nil && !action.NeedsProof() {
			proofErr = errs.NewValueIsInvalidErrorWithCause("delivery_proof",
				fmt.Errorf("%s does not take a proof image", action))
		}
	}

	if err := errors.Join(
		orderID.Validate(),
		by.Validate(),
		action.Validate(),
		proofErr,
	); err != nil {
		return ApplyTransitionCommand{}, err
	}

	return ApplyTransitionCommand{
		orderID: orderID,
		by:      by,
		action:  action,
		proof:   proof,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ApplyTransitionCommand) Validate() error {
	return c.guard.Validate(ErrApplyTransitionCommandIsNotConstructed)
}

func (c ApplyTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ApplyTransitionCommand) By() actor.Actor {
	return c.by
}

func (c ApplyTransitionCommand) Action() order.Action {
	return c.action
}

// Proof is nil when no image was supplied.
func (c ApplyTransitionCommand) Proof() *ImageUpload {
	return c.proof
}
