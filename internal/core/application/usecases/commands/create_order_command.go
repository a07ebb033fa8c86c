package commands

import (
	"errors"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order on behalf of a consumer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(buyer, productID, sellerID, 2, "780.00", "GCash", "Brgy. Poblacion, Batangas")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	view, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	by            actor.Actor
	productID     kernel.UUID
	sellerID      kernel.UUID
	quantity      int
	totalAmount   kernel.Money
	paymentMethod string
	shipTo        kernel.Address

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	by actor.Actor,
	productID, sellerID kernel.UUID,
	quantity int,
	totalAmount, paymentMethod, shipTo string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		by:            by,
		productID:     productID,
		sellerID:      sellerID,
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}

	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	cmd.quantity = quantity

	amount, amountErr := kernel.MoneyFromString(totalAmount)
	cmd.totalAmount = amount

	address, addressErr := kernel.NewAddress(shipTo)
	cmd.shipTo = address

	if err := errors.Join(
		by.Validate(),
		productID.Validate(),
		sellerID.Validate(),
		quantityErr,
		amountErr,
		addressErr,
	); err != nil {
		return CreateOrderCommand{}, err
	}
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) By() actor.Actor {
	return c.by
}

func (c CreateOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateOrderCommand) SellerID() kernel.UUID {
	return c.sellerID
}

func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

func (c CreateOrderCommand) TotalAmount() kernel.Money {
	return c.totalAmount
}

func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c CreateOrderCommand) ShipTo() kernel.Address {
	return c.shipTo
}
