package commands

import (
	"context"
	"time"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/pkg/errs"
)

// CreateOrderCommandHandler places orders. The initial OrderPlaced state is
// set by the order constructor, not by the lifecycle engine.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle places the order with a freshly generated order number. Only
// consumers place orders; the consumer becomes the buyer.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return OrderView{}, err
	}
	if cmd.By().Role() != actor.Consumer {
		return OrderView{}, errs.NewForbiddenError("place order", "only consumers place orders")
	}

	at := h.now()
	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
		Number:        order.GenerateNumber(at),
		AccountID:     cmd.By().ID(),
		ProductID:     cmd.ProductID(),
		SellerID:      cmd.SellerID(),
		Quantity:      cmd.Quantity(),
		TotalAmount:   cmd.TotalAmount(),
		PaymentMethod: cmd.PaymentMethod(),
		ShipTo:        cmd.ShipTo(),
	}, at)
	if err != nil {
		return OrderView{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return OrderView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return OrderView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderView{}, err
	}

	return NewOrderView(o), nil
}
