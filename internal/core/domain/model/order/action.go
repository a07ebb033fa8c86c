package order

import (
	"fmt"
	"slices"
	"strings"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/pkg/errs"
)

// Action is a request to move an order along one edge of its lifecycle.
type Action int

const (
	UnknownAction Action = iota
	MarkAwaitingCourier
	Pickup
	// AttachProof stores delivery evidence without changing the status, so that
	// the buyer can confirm receipt afterwards.
	AttachProof
	UploadProofAndDeliver
	ConfirmReceived
	Cancel
	RequestRefund
	ApproveRefund
	RejectRefund
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		UnknownAction:         "Unknown",
		MarkAwaitingCourier:   "MarkAwaitingCourier",
		Pickup:                "Pickup",
		AttachProof:           "AttachProof",
		UploadProofAndDeliver: "UploadProofAndDeliver",
		ConfirmReceived:       "ConfirmReceived",
		Cancel:                "Cancel",
		RequestRefund:         "RequestRefund",
		ApproveRefund:         "ApproveRefund",
		RejectRefund:          "RejectRefund",
	}
}

// transitions is the complete lifecycle graph: status -> action -> targets.
// Anything missing here is an invalid transition.
var transitions = map[Status]map[Action][]Status{
	OrderPlaced: {
		MarkAwaitingCourier: {WaitingForCourier},
		Cancel:              {Cancelled},
	},
	WaitingForCourier: {
		Pickup: {InTransit},
		Cancel: {Cancelled},
	},
	InTransit: {
		AttachProof:           {InTransit},
		UploadProofAndDeliver: {OrderDelivered},
		ConfirmReceived:       {OrderDelivered},
		Cancel:                {Cancelled},
	},
	OrderDelivered: {
		RequestRefund: {Pending},
	},
	Pending: {
		ApproveRefund: {Refund, Replace},
		RejectRefund:  {OrderDelivered},
	},
}

// capabilities lists the roles allowed to attempt each action. Whether the
// actor is related to the particular order is checked by the aggregate.
var capabilities = map[Action][]actor.Role{
	MarkAwaitingCourier:   {actor.Farmer},
	Pickup:                {actor.Rider},
	AttachProof:           {actor.Rider, actor.Farmer},
	UploadProofAndDeliver: {actor.Rider, actor.Farmer},
	ConfirmReceived:       {actor.Consumer, actor.Farmer},
	Cancel:                {actor.Consumer, actor.Farmer, actor.Rider, actor.Admin},
	RequestRefund:         {actor.Consumer},
	ApproveRefund:         {actor.Farmer, actor.Admin},
	RejectRefund:          {actor.Farmer, actor.Admin},
}

func AllActions() []Action {
	return []Action{
		MarkAwaitingCourier, Pickup, AttachProof, UploadProofAndDeliver,
		ConfirmReceived, Cancel, RequestRefund, ApproveRefund, RejectRefund,
	}
}

func ActionFromString(s string) (Action, error) {
	for _, a := range AllActions() {
		if strings.EqualFold(strings.TrimSpace(s), a.String()) {
			return a, nil
		}
	}
	return UnknownAction, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a valid action", s))
}

func (a Action) Validate() error {
	if _, ok := capabilities[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

func (a Action) String() string {
	if s, ok := getActionStrings()[a]; ok {
		return s
	}
	return "Unknown"
}

// Permits reports whether role r may attempt a at all.
func (a Action) Permits(r actor.Role) bool {
	return slices.Contains(capabilities[a], r)
}

// NeedsProof reports actions whose payload must carry a delivery proof.
func (a Action) NeedsProof() bool {
	return a == AttachProof || a == UploadProofAndDeliver
}
