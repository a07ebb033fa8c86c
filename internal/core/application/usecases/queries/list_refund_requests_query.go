package queries

import (
	"errors"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/refund"
	"shipment/internal/pkg/guard"
)

var ErrListRefundRequestsQueryIsNotConstructed = errors.New(
	"ListRefundRequestsQuery must be created via NewListRefundRequestsQuery constructor",
)

// ListRefundRequestsQuery lists the refund and replace requests the caller
// takes part in:
//   - Consumer: requests they opened
//   - Farmer: requests on orders of the products they sell
//   - Admin: everything
//
// A zero status lists every status.
type ListRefundRequestsQuery struct {
	status refund.Status
	by     actor.Actor

	guard guard.ConstructorGuard
}

func NewListRefundRequestsQuery(status refund.Status, by actor.Actor) (ListRefundRequestsQuery, error) {
	var statusErr error
	if status != refund.UnknownStatus {
		statusErr = status.Validate()
	}
	if err := errors.Join(statusErr, by.Validate()); err != nil {
		return ListRefundRequestsQuery{}, err
	}
	return ListRefundRequestsQuery{status: status, by: by, guard: guard.NewConstructorGuard()}, nil
}

func (q ListRefundRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListRefundRequestsQueryIsNotConstructed)
}

func (q ListRefundRequestsQuery) Status() refund.Status {
	return q.status
}

func (q ListRefundRequestsQuery) By() actor.Actor {
	return q.by
}
