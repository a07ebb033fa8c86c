// Package events holds the wire form of status change notifications and a
// publisher that forwards them to several transports.
package events

import (
	"context"
	"errors"
	"time"

	"shipment/internal/core/domain/model/order"
	"shipment/internal/core/ports"

	"github.com/google/uuid"
)

// StatusChanged is the JSON body published for every committed transition.
type StatusChanged struct {
	EventID     string    `json:"event_id"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Action      string    `json:"action"`
	ActorID     string    `json:"actor_id"`
	ActorRole   string    `json:"actor_role"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewStatusChanged(c order.StatusChange) StatusChanged {
	return StatusChanged{
		EventID:     uuid.NewString(),
		OrderID:     c.OrderID.String(),
		OrderNumber: c.OrderNumber,
		From:        c.From.String(),
		To:          c.To.String(),
		Action:      c.Action.String(),
		ActorID:     c.ActorID.String(),
		ActorRole:   c.ActorRole.String(),
		OccurredAt:  c.At.UTC(),
	}
}

// FanOut publishes to every wrapped publisher, even after one fails.
type FanOut []ports.StatusChangePublisher

func (f FanOut) Publish(ctx context.Context, changes ...order.StatusChange) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, changes...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
