package order

import (
	"fmt"
	"strings"

	"shipment/internal/pkg/errs"
)

// Status is the position of an order in its lifecycle.
//
//	OrderPlaced ──> WaitingForCourier ──> InTransit ──> OrderDelivered ──> Pending ──┬──> Refund
//	     │                 │                  │               ^               │     └──> Replace
//	     └─────────────────┴──────────────────┴──> Cancelled  └───(rejected)──┘
//
// The edges and the actions that walk them are listed in transitions.
type Status int

const (
	Unknown Status = iota
	OrderPlaced
	WaitingForCourier
	InTransit
	OrderDelivered
	Cancelled
	// Pending means a refund or replacement was requested and awaits a decision.
	Pending
	Refund
	Replace
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		OrderPlaced:       "OrderPlaced",
		WaitingForCourier: "WaitingForCourier",
		InTransit:         "InTransit",
		OrderDelivered:    "OrderDelivered",
		Cancelled:         "Cancelled",
		Pending:           "Pending",
		Refund:            "Refund",
		Replace:           "Replace",
	}
}

// getStatusLabels holds the labels shown to farmers, riders and buyers.
func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown has no label
	return map[Status]string{
		OrderPlaced:       "Order placed",
		WaitingForCourier: "Waiting for courier",
		InTransit:         "In transit",
		OrderDelivered:    "Order delivered",
		Cancelled:         "Cancelled",
		Pending:           "Pending",
		Refund:            "Refund",
		Replace:           "Replace",
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{OrderPlaced, WaitingForCourier, InTransit, OrderDelivered, Cancelled, Pending, Refund, Replace}
}

// StatusFromString accepts either the identifier ("InTransit") or the label
// ("In transit"), ignoring case.
func StatusFromString(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for _, st := range AllStatuses() {
		if strings.EqualFold(s, st.String()) || strings.EqualFold(s, st.Label()) {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) Label() string {
	return getStatusLabels()[s]
}

// IsTerminal reports statuses with no way forward except a refund request
// from OrderDelivered.
func (s Status) IsTerminal() bool {
	switch s { //nolint:exhaustive // everything else is in flight
	case OrderDelivered, Cancelled, Refund, Replace:
		return true
	default:
		return false
	}
}

// Next resolves the target of action a from s. It fails with an
// InvalidTransitionError when s has no edge for a, and also when the edge has
// several targets; use To for those.
func (s Status) Next(a Action) (Status, error) {
	targets := s.Targets(a)
	if len(targets) != 1 {
		return Unknown, errs.NewInvalidTransitionError(a.String(), s.String())
	}
	return targets[0], nil
}

// To checks that action a may move s to the given target.
func (s Status) To(a Action, target Status) (Status, error) {
	for _, t := range s.Targets(a) {
		if t == target {
			return t, nil
		}
	}
	return Unknown, errs.NewInvalidTransitionError(a.String(), s.String())
}

// Targets returns the statuses action a can lead to from s.
func (s Status) Targets(a Action) []Status {
	return transitions[s][a]
}
