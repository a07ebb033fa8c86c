package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shipment/internal/adapters/out/events"
	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, changes ...order.StatusChange) error {
	args := m.Called(ctx, changes)
	return args.Error(0)
}

func change() order.StatusChange {
	return order.StatusChange{
		OrderID:     kernel.NewUUID(),
		OrderNumber: "ORD-20260801-0A1B2C3D",
		From:        order.WaitingForCourier,
		To:          order.InTransit,
		Action:      order.Pickup,
		ActorID:     kernel.NewUUID(),
		ActorRole:   actor.Rider,
		At:          time.Date(2026, 8, 1, 10, 0, 0, 0, time.FixedZone("PHT", 8*3600)),
	}
}

func TestNewStatusChanged(t *testing.T) {
	c := change()

	e := events.NewStatusChanged(c)

	assert.NotEmpty(t, e.EventID)
	assert.Equal(t, c.OrderID.String(), e.OrderID)
	assert.Equal(t, "WaitingForCourier", e.From)
	assert.Equal(t, "InTransit", e.To)
	assert.Equal(t, "Pickup", e.Action)
	assert.Equal(t, "Rider", e.ActorRole)
	assert.Equal(t, time.UTC, e.OccurredAt.Location())
}

func TestFanOut_Publish(t *testing.T) {
	t.Run("should reach every publisher and join errors", func(t *testing.T) {
		ctx := t.Context()
		c := change()
		first, second := new(MockPublisher), new(MockPublisher)
		first.On("Publish", ctx, []order.StatusChange{c}).Return(errors.New("broker down")).Once()
		second.On("Publish", ctx, []order.StatusChange{c}).Return(nil).Once()

		err := events.FanOut{first, nil, second}.Publish(ctx, c)

		require.ErrorContains(t, err, "broker down")
		first.AssertExpectations(t)
		second.AssertExpectations(t)
	})

	t.Run("should succeed with no publishers", func(t *testing.T) {
		require.NoError(t, events.FanOut{}.Publish(t.Context(), change()))
	})
}
