package queries

import (
	"context"
	"fmt"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/refund"
	"shipment/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListRefundRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListRefundRequestsQueryHandler(db *gorm.DB) ListRefundRequestsQueryHandler {
	return ListRefundRequestsQueryHandler{db: db}
}

// Handle returns the visible requests, newest first.
func (h ListRefundRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListRefundRequestsQuery,
) ([]RefundRequestDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	by := query.By()
	stmt := `SELECT ` + refundRequestColumns + `
		FROM refund_requests r
		JOIN orders o ON o.id = r.order_id
		WHERE TRUE`
	var args []any

	switch by.Role() {
	case actor.Consumer:
		stmt += ` AND r.account_id = ?`
		args = append(args, by.ID().Bytes())
	case actor.Farmer:
		stmt += ` AND o.seller_id = ?`
		args = append(args, by.ID().Bytes())
	case actor.Admin:
	default:
		return nil, errs.NewForbiddenError("list refund requests",
			fmt.Sprintf("role %s cannot list refund requests", by.Role()))
	}
	if query.Status() != refund.UnknownStatus {
		stmt += ` AND r.status = ?`
		args = append(args, int(query.Status()))
	}
	stmt += ` ORDER BY r.created_at DESC, r.id`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	return scanRefundRequestDetails(rows)
}
