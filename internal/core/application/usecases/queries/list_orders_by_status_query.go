package queries

import (
	"errors"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/pkg/guard"
)

var ErrListOrdersByStatusQueryIsNotConstructed = errors.New(
	"ListOrdersByStatusQuery must be created via NewListOrdersByStatusQuery constructor",
)

// ListOrdersByStatusQuery lists the orders in one status that the caller is
// allowed to see:
//   - Farmer: orders of the products they sell
//   - Consumer: their own orders
//   - Rider: every order waiting for a courier, plus orders bound to them
//   - Admin: everything
type ListOrdersByStatusQuery struct {
	status order.Status
	by     actor.Actor

	guard guard.ConstructorGuard
}

func NewListOrdersByStatusQuery(status order.Status, by actor.Actor) (ListOrdersByStatusQuery, error) {
	if err := errors.Join(status.Validate(), by.Validate()); err != nil {
		return ListOrdersByStatusQuery{}, err
	}
	return ListOrdersByStatusQuery{status: status, by: by, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByStatusQueryIsNotConstructed)
}

func (q ListOrdersByStatusQuery) Status() order.Status {
	return q.status
}

func (q ListOrdersByStatusQuery) By() actor.Actor {
	return q.by
}
