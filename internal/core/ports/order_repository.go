// Package ports defines the contracts between the shipment core and its
// adapters: repositories, unit of work, blob storage, audit log and event
// publishing.
package ports

import (
	"context"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its human-facing number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// UpdateIfStatus writes the order only if its stored status still equals
	// expected, and appends the order's pending StatusChanges to the status
	// history in the same statement batch.
	//
	// Business Rules:
	//   - zero matched rows with an existing order is a ConflictError
	//   - zero matched rows with a missing order is an ObjectNotFoundError
	//   - the expected status is the one read before the action was applied
	//
	// Example:
	//   expected := o.Status()
	//   if err := o.Pickup(rider, now); err != nil {
	//       return err
	//   }
	//   err := repo.UpdateIfStatus(ctx, o, expected)
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error
}
