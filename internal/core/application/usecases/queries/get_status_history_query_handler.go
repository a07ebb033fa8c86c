package queries

import (
	"context"

	"shipment/internal/core/domain/model/order"
	"shipment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetStatusHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetStatusHistoryQueryHandler(db *gorm.DB) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{db: db}
}

// Handle returns the history oldest first. An order that exists but has never
// moved yields an empty slice; an unknown order is ObjectNotFound.
func (h GetStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusHistoryQuery,
) ([]StatusHistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	db := h.db.WithContext(ctx)

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)`, query.OrderID().Bytes()).
		Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	rows, err := db.Raw(`
		SELECT
			from_status,
			to_status,
			action,
			actor_id,
			actor_role,
			changed_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY changed_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]StatusHistoryEntry, 0)
	for rows.Next() {
		var (
			entry    StatusHistoryEntry
			from, to int
			actorID  uuid.UUID
		)
		if err = rows.Scan(&from, &to, &entry.Action, &actorID, &entry.ActorRole, &entry.ChangedAt); err != nil {
			return nil, err
		}
		entry.From = order.Status(from).String()
		entry.To = order.Status(to).String()
		entry.ActorID = actorID.String()
		entry.ChangedAt = entry.ChangedAt.UTC()
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return history, nil
}
