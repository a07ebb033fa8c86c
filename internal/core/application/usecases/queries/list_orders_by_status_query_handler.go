package queries

import (
	"context"
	"fmt"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersByStatusQueryHandler(db *gorm.DB) ListOrdersByStatusQueryHandler {
	return ListOrdersByStatusQueryHandler{db: db}
}

// Handle returns the visible orders, newest first.
func (h ListOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByStatusQuery,
) ([]OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	by := query.By()
	stmt := `SELECT ` + orderColumns + ` FROM orders WHERE status = ?`
	args := []any{int(query.Status())}

	switch by.Role() {
	case actor.Farmer:
		stmt += ` AND seller_id = ?`
		args = append(args, by.ID().Bytes())
	case actor.Consumer:
		stmt += ` AND account_id = ?`
		args = append(args, by.ID().Bytes())
	case actor.Rider:
		stmt += ` AND (status = ? OR rider_id = ?)`
		args = append(args, int(order.WaitingForCourier), by.ID().Bytes())
	case actor.Admin:
	default:
		return nil, errs.NewForbiddenError("list orders", fmt.Sprintf("role %s cannot list orders", by.Role()))
	}
	stmt += ` ORDER BY created_at DESC, id`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	return scanOrderDetails(rows)
}
