package services_test

import (
	"testing"
	"time"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/core/domain/services"
	"shipment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)

type cast struct {
	buyer, seller, rider, admin actor.Actor
}

func newCast(t *testing.T) cast {
	t.Helper()
	mk := func(r actor.Role) actor.Actor {
		a, err := actor.NewActor(kernel.NewUUID(), r)
		require.NoError(t, err)
		return a
	}
	return cast{buyer: mk(actor.Consumer), seller: mk(actor.Farmer), rider: mk(actor.Rider), admin: mk(actor.Admin)}
}

func orderIn(t *testing.T, c cast, status order.Status, proof string) *order.Order {
	t.Helper()
	total, _ := kernel.MoneyFromString("780.00")
	shipTo, _ := kernel.NewAddress("Brgy. Poblacion, Batangas")
	var rider *kernel.UUID
	if status != order.OrderPlaced && status != order.WaitingForCourier {
		id := c.rider.ID()
		rider = &id
	}

	o, err := order.RestoreOrder(kernel.NewUUID(), order.Details{
		Number:        order.GenerateNumber(at),
		AccountID:     c.buyer.ID(),
		ProductID:     kernel.NewUUID(),
		SellerID:      c.seller.ID(),
		Quantity:      2,
		TotalAmount:   total,
		PaymentMethod: "GCash",
		ShipTo:        shipTo,
	}, status, rider, proof, at, at)
	require.NoError(t, err)
	return o
}

func TestLifecycleEngine_Apply(t *testing.T) {
	engine := services.NewLifecycleEngine()
	c := newCast(t)

	tests := []struct {
		name    string
		from    order.Status
		proof   string
		by      func() actor.Actor
		action  order.Action
		payload services.Payload
		want    order.Status
		wantErr error
	}{
		{"seller readies order", order.OrderPlaced, "", func() actor.Actor { return c.seller }, order.MarkAwaitingCourier, services.Payload{}, order.WaitingForCourier, nil},
		{"rider picks up", order.WaitingForCourier, "", func() actor.Actor { return c.rider }, order.Pickup, services.Payload{}, order.InTransit, nil},
		{"rider attaches proof", order.InTransit, "", func() actor.Actor { return c.rider }, order.AttachProof, services.Payload{ProofRef: "p.jpg"}, order.InTransit, nil},
		{"rider delivers with proof", order.InTransit, "", func() actor.Actor { return c.rider }, order.UploadProofAndDeliver, services.Payload{ProofRef: "p.jpg"}, order.OrderDelivered, nil},
		{"buyer confirms with proof", order.InTransit, "p.jpg", func() actor.Actor { return c.buyer }, order.ConfirmReceived, services.Payload{}, order.OrderDelivered, nil},
		{"buyer confirms without proof", order.InTransit, "", func() actor.Actor { return c.buyer }, order.ConfirmReceived, services.Payload{}, order.InTransit, errs.ErrPreconditionFailed},
		{"admin cancels", order.WaitingForCourier, "", func() actor.Actor { return c.admin }, order.Cancel, services.Payload{}, order.Cancelled, nil},
		{"consumer marks awaiting", order.OrderPlaced, "", func() actor.Actor { return c.buyer }, order.MarkAwaitingCourier, services.Payload{}, order.OrderPlaced, errs.ErrForbidden},
		{"pickup of delivered order", order.OrderDelivered, "p.jpg", func() actor.Actor { return c.rider }, order.Pickup, services.Payload{}, order.OrderDelivered, errs.ErrInvalidTransition},
		{"refund actions are routed elsewhere", order.OrderDelivered, "p.jpg", func() actor.Actor { return c.buyer }, order.RequestRefund, services.Payload{}, order.OrderDelivered, errs.ErrValueIsInvalid},
		{"unknown action", order.OrderPlaced, "", func() actor.Actor { return c.seller }, order.UnknownAction, services.Payload{}, order.OrderPlaced, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := orderIn(t, c, tt.from, tt.proof)

			err := engine.Apply(o, tt.by(), tt.action, tt.payload, at.Add(time.Minute))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, o.Changes())
			} else {
				require.NoError(t, err)
				require.Len(t, o.Changes(), 1)
			}
			assert.Equal(t, tt.want, o.Status())
		})
	}
}

func TestLifecycleEngine_Supports(t *testing.T) {
	engine := services.NewLifecycleEngine()

	assert.True(t, engine.Supports(order.Pickup))
	assert.True(t, engine.Supports(order.AttachProof))
	assert.False(t, engine.Supports(order.RequestRefund))
	assert.False(t, engine.Supports(order.ApproveRefund))
	assert.False(t, engine.Supports(order.UnknownAction))
}

func TestLifecycleEngine_Check(t *testing.T) {
	engine := services.NewLifecycleEngine()
	c := newCast(t)

	t.Run("passes without mutating the order", func(t *testing.T) {
		o := orderIn(t, c, order.InTransit, "")

		require.NoError(t, engine.Check(o, c.rider, order.UploadProofAndDeliver))
		assert.Equal(t, order.InTransit, o.Status())
		assert.Empty(t, o.Changes())
	})

	t.Run("forbidden comes before the edge", func(t *testing.T) {
		o := orderIn(t, c, order.Cancelled, "")

		require.ErrorIs(t, engine.Check(o, c.buyer, order.AttachProof), errs.ErrForbidden)
	})

	t.Run("missing edge", func(t *testing.T) {
		o := orderIn(t, c, order.OrderDelivered, "p.jpg")

		require.ErrorIs(t, engine.Check(o, c.rider, order.AttachProof), errs.ErrInvalidTransition)
	})

	t.Run("refund action", func(t *testing.T) {
		o := orderIn(t, c, order.OrderDelivered, "p.jpg")

		require.ErrorIs(t, engine.Check(o, c.buyer, order.RequestRefund), errs.ErrValueIsInvalid)
	})
}

// Walks every supported action from every status with every role and checks
// that the engine never leaves the transition table.
func TestLifecycleEngine_NeverLeavesTheTable(t *testing.T) {
	engine := services.NewLifecycleEngine()
	c := newCast(t)
	actors := []actor.Actor{c.buyer, c.seller, c.rider, c.admin}

	for _, from := range order.AllStatuses() {
		for _, a := range order.AllActions() {
			if !engine.Supports(a) {
				continue
			}
			for _, by := range actors {
				proof := ""
				if from == order.OrderDelivered || from == order.Pending || from == order.Refund || from == order.Replace {
					proof = "p.jpg"
				}
				o := orderIn(t, c, from, proof)

				err := engine.Apply(o, by, a, services.Payload{ProofRef: "new.jpg"}, at)
				if err != nil {
					assert.Equal(t, from, o.Status())
					continue
				}

				assert.Contains(t, from.Targets(a), o.Status(), "%s -%s-> %s", from, a, o.Status())
				if o.Status() == order.OrderDelivered {
					assert.True(t, o.HasDeliveryProof())
				}
			}
		}
	}
}
