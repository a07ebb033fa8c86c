package queries

import (
	"errors"
	"strings"

	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery looks an order up by its human-facing number, such as
// ORD-20260314-9F3A1C02.
type GetOrderDetailsQuery struct {
	number string

	guard guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(number string) (GetOrderDetailsQuery, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return GetOrderDetailsQuery{}, errs.NewValueIsRequiredError("order_number")
	}
	return GetOrderDetailsQuery{number: number, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) Number() string {
	return q.number
}
