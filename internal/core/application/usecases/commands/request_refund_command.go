package commands

import (
	"errors"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/refund"
	"shipment/internal/pkg/guard"
)

var ErrRequestRefundCommandIsNotConstructed = errors.New(
	"RequestRefundCommand must be created via NewRequestRefundCommand constructor",
)

// RequestRefundCommand opens a refund request on a delivered order. The claim
// itself (reason length, payment method) is validated by the refund aggregate.
type RequestRefundCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	by            actor.Actor
	reason        string
	solution      refund.Solution
	returnMethod  refund.ReturnMethod
	paymentMethod string
	image         *ImageUpload

	guard guard.ConstructorGuard
}

func NewRequestRefundCommand(
	orderID kernel.UUID,
	by actor.Actor,
	reason, solution, returnMethod, paymentMethod string,
	image *ImageUpload,
) (RequestRefundCommand, error) {
	s, solutionErr := refund.SolutionFromString(solution)
	m, methodErr := refund.ReturnMethodFromString(returnMethod)

	var imageErr error
	if image != nil {
		imageErr = image.Validate()
	}

	if err := errors.Join(
		orderID.Validate(),
		by.Validate(),
		solutionErr,
		methodErr,
		imageErr,
	); err != nil {
		return RequestRefundCommand{}, err
	}

	return RequestRefundCommand{
		orderID:       orderID,
		by:            by,
		reason:        reason,
		solution:      s,
		returnMethod:  m,
		paymentMethod: paymentMethod,
		image:         image,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c RequestRefundCommand) Validate() error {
	return c.guard.Validate(ErrRequestRefundCommandIsNotConstructed)
}

func (c RequestRefundCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RequestRefundCommand) By() actor.Actor {
	return c.by
}

// Image is nil when the buyer attached no photo.
func (c RequestRefundCommand) Image() *ImageUpload {
	return c.image
}

// Claim builds the claim with the stored image reference.
func (c RequestRefundCommand) Claim(imageRef string) refund.Claim {
	return refund.Claim{
		Reason:        c.reason,
		Solution:      c.solution,
		ReturnMethod:  c.returnMethod,
		ProofImage:    imageRef,
		PaymentMethod: c.paymentMethod,
	}
}
