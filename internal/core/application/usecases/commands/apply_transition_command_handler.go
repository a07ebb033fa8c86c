package commands

import (
	"context"
	"time"

	"shipment/internal/core/domain/services"
	"shipment/internal/core/ports"
)

const deliveryProofPrefix = "DeliveryProof"

// ApplyTransitionCommandHandler drives a single lifecycle action.
//
// The order is read outside the transaction and written back with a
// compare-and-swap on the status it was read in, so two riders racing for the
// same pickup cannot both win: the loser gets a ConflictError.
//
// Example:
//
//	handler := NewApplyTransitionCommandHandler(uowFactory, blobs)
//	cmd, _ := NewApplyTransitionCommand(orderID, rider, order.Pickup, nil)
//	view, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrInvalidTransition):
//	    // someone else picked it up first
//	case err != nil:
//	    return err
//	}
type ApplyTransitionCommandHandler struct {
	uowFactory OrderUoWFactory
	blobs      ports.BlobStorage
	engine     services.LifecycleEngine
	now        func() time.Time
}

func NewApplyTransitionCommandHandler(uowFactory OrderUoWFactory, blobs ports.BlobStorage) ApplyTransitionCommandHandler {
	return ApplyTransitionCommandHandler{
		uowFactory: uowFactory,
		blobs:      blobs,
		engine:     services.NewLifecycleEngine(),
		now:        time.Now,
	}
}

// Handle loads the order, stores the proof image if one was supplied and
// commits the transition. The image is stored only after the caller passed
// the capability, relationship and edge checks, and removed again when the
// transition is not committed.
func (h ApplyTransitionCommandHandler) Handle(ctx context.Context, cmd ApplyTransitionCommand) (OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return OrderView{}, err
	}

	uow := h.uowFactory.Create()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return OrderView{}, err
	}
	expected := o.Status()

	at := h.now()
	var payload services.Payload
	if proof := cmd.Proof(); proof != nil {
		if err = h.engine.Check(o, cmd.By(), cmd.Action()); err != nil {
			return OrderView{}, err
		}
		payload.ProofRef, err = h.blobs.Store(ctx, proof.blob(deliveryProofPrefix, cmd.By().ID(), at))
		if err != nil {
			return OrderView{}, err
		}
	}
	committed := false
	defer func() {
		if !committed {
			discardBlob(ctx, h.blobs, payload.ProofRef)
		}
	}()

	if err = h.engine.Apply(o, cmd.By(), cmd.Action(), payload, at); err != nil {
		return OrderView{}, err
	}

	if err = uow.Begin(ctx); err != nil {
		return OrderView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().UpdateIfStatus(ctx, o, expected); err != nil {
		return OrderView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderView{}, err
	}
	committed = true

	return NewOrderView(o), nil
}
