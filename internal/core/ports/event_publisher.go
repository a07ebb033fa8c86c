package ports

import (
	"context"

	"shipment/internal/core/domain/model/order"
)

// StatusChangePublisher announces committed status changes to the outside
// world (message brokers, caches). It is called after commit, so its failures
// never undo a transition.
type StatusChangePublisher interface {
	Publish(ctx context.Context, changes ...order.StatusChange) error
}
