// Package commands contains the operations that change orders and refund
// requests. Every command is validated by its constructor; every handler
// loads aggregates, applies a domain service and persists with a conditional
// write inside one transaction.
package commands

import (
	"context"

	"shipment/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository, bound to the
	// transaction once Begin was called.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RefundRepoFactory provides access to the refund repository.
	RefundRepoFactory interface {
		RefundRepository() ports.RefundRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across orders and refund requests.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orders := uow.OrderRepository()
	//   refunds := uow.RefundRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		RefundRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
