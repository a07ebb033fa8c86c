package commands

import (
	"context"
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/services"
	"shipment/internal/core/ports"
)

const refundProofPrefix = "RefundProof"

// RequestRefundCommandHandler opens refund requests. The new request and the
// order moving to Pending are written in one transaction; the order write is
// conditional on the order still being OrderDelivered.
type RequestRefundCommandHandler struct {
	uowFactory UoWFactory
	blobs      ports.BlobStorage
	workflow   services.RefundWorkflow
	now        func() time.Time
}

func NewRequestRefundCommandHandler(uowFactory UoWFactory, blobs ports.BlobStorage) RequestRefundCommandHandler {
	return RequestRefundCommandHandler{
		uowFactory: uowFactory,
		blobs:      blobs,
		workflow:   services.NewRefundWorkflow(),
		now:        time.Now,
	}
}

func (h RequestRefundCommandHandler) Handle(ctx context.Context, cmd RequestRefundCommand) (RefundOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return RefundOutcome{}, err
	}

	uow := h.uowFactory.Create()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return RefundOutcome{}, err
	}
	expected := o.Status()

	active, err := uow.RefundRepository().FindPendingByOrder(ctx, o.ID())
	if err != nil {
		return RefundOutcome{}, err
	}
	if err = h.workflow.CanOpen(o, cmd.By(), active); err != nil {
		return RefundOutcome{}, err
	}

	at := h.now()
	var imageRef string
	if image := cmd.Image(); image != nil {
		imageRef, err = h.blobs.Store(ctx, image.blob(refundProofPrefix, cmd.By().ID(), at))
		if err != nil {
			return RefundOutcome{}, err
		}
	}
	committed := false
	defer func() {
		if !committed {
			discardBlob(ctx, h.blobs, imageRef)
		}
	}()

	r, err := h.workflow.Open(o, cmd.By(), kernel.NewUUID(), cmd.Claim(imageRef), active, at)
	if err != nil {
		return RefundOutcome{}, err
	}

	if err = uow.Begin(ctx); err != nil {
		return RefundOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RefundRepository().Add(ctx, r); err != nil {
		return RefundOutcome{}, err
	}

	if err = uow.OrderRepository().UpdateIfStatus(ctx, o, expected); err != nil {
		return RefundOutcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RefundOutcome{}, err
	}
	committed = true

	return RefundOutcome{Order: NewOrderView(o), Refund: NewRefundView(r)}, nil
}
