package queries

import (
	"errors"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/guard"
)

var ErrGetRiderHistoryQueryIsNotConstructed = errors.New(
	"GetRiderHistoryQuery must be created via NewGetRiderHistoryQuery constructor",
)

// GetRiderHistoryQuery lists the finished deliveries of one rider: orders
// bound to them that ended delivered or cancelled.
type GetRiderHistoryQuery struct {
	riderID kernel.UUID
	by      actor.Actor

	guard guard.ConstructorGuard
}

func NewGetRiderHistoryQuery(riderID kernel.UUID, by actor.Actor) (GetRiderHistoryQuery, error) {
	if err := errors.Join(riderID.Validate(), by.Validate()); err != nil {
		return GetRiderHistoryQuery{}, err
	}
	return GetRiderHistoryQuery{riderID: riderID, by: by, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRiderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderHistoryQueryIsNotConstructed)
}

func (q GetRiderHistoryQuery) RiderID() kernel.UUID {
	return q.riderID
}

func (q GetRiderHistoryQuery) By() actor.Actor {
	return q.by
}
