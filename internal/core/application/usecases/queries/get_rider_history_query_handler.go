package queries

import (
	"context"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetRiderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetRiderHistoryQueryHandler(db *gorm.DB) GetRiderHistoryQueryHandler {
	return GetRiderHistoryQueryHandler{db: db}
}

// Handle returns the rider's finished orders, most recently updated first.
// Riders see only their own history; admins see anyone's.
func (h GetRiderHistoryQueryHandler) Handle(ctx context.Context, query GetRiderHistoryQuery) ([]OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	by := query.By()
	if by.Role() != actor.Admin && !by.Is(actor.Rider, query.RiderID()) {
		return nil, errs.NewForbiddenError("view rider history", "riders may only view their own history")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE rider_id = ? AND status IN (?, ?)
		ORDER BY updated_at DESC, id
	`, query.RiderID().Bytes(), int(order.OrderDelivered), int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	return scanOrderDetails(rows)
}
