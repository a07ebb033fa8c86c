package queries

import (
	"errors"
	"time"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/guard"
)

// DeliveryProofURLTTL is how long a presigned delivery proof link stays valid.
const DeliveryProofURLTTL = 15 * time.Minute

var ErrGetDeliveryProofQueryIsNotConstructed = errors.New(
	"GetDeliveryProofQuery must be created via NewGetDeliveryProofQuery constructor",
)

// GetDeliveryProofQuery asks for a download link to an order's delivery proof.
// Only the farmer selling the order and admins may see it.
type GetDeliveryProofQuery struct {
	orderID kernel.UUID
	by      actor.Actor

	guard guard.ConstructorGuard
}

func NewGetDeliveryProofQuery(orderID kernel.UUID, by actor.Actor) (GetDeliveryProofQuery, error) {
	if err := errors.Join(orderID.Validate(), by.Validate()); err != nil {
		return GetDeliveryProofQuery{}, err
	}
	return GetDeliveryProofQuery{orderID: orderID, by: by, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryProofQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryProofQueryIsNotConstructed)
}

func (q GetDeliveryProofQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetDeliveryProofQuery) By() actor.Actor {
	return q.by
}

type DeliveryProof struct {
	OrderID   string    `json:"order_id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
