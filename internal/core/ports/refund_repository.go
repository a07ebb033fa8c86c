package ports

import (
	"context"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/refund"
)

// RefundRepository defines the persistence contract for refund requests.
type RefundRepository interface {
	// Add persists a new request. A second Pending request for the same order
	// is a ConflictError.
	Add(ctx context.Context, request *refund.Request) error

	Get(ctx context.Context, id kernel.UUID) (*refund.Request, error)

	// FindPendingByOrder returns the Pending request of an order, or nil when
	// there is none.
	FindPendingByOrder(ctx context.Context, orderID kernel.UUID) (*refund.Request, error)

	// UpdateIfStatus writes the request only if its stored status still equals
	// expected; otherwise it returns a ConflictError.
	UpdateIfStatus(ctx context.Context, request *refund.Request, expected refund.Status) error
}
