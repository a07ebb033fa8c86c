package refund

import (
	"fmt"
	"strings"

	"shipment/internal/core/domain/model/order"
	"shipment/internal/pkg/errs"
)

// Solution is what the buyer asks for.
type Solution int

const (
	UnknownSolution Solution = iota
	SolutionRefund
	SolutionReplace
)

func SolutionFromString(s string) (Solution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "refund":
		return SolutionRefund, nil
	case "replace":
		return SolutionReplace, nil
	default:
		return UnknownSolution, errs.NewValueIsInvalidErrorWithCause("solution",
			fmt.Errorf("%q must be Refund or Replace", s))
	}
}

func (s Solution) Validate() error {
	if s != SolutionRefund && s != SolutionReplace {
		return errs.NewValueIsInvalidErrorWithCause("solution", fmt.Errorf("%d is not a valid solution", s))
	}
	return nil
}

func (s Solution) String() string {
	switch s { //nolint:exhaustive // unknown falls through
	case SolutionRefund:
		return "Refund"
	case SolutionReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// Outcome is the order status an approved request resolves to.
func (s Solution) Outcome() order.Status {
	if s == SolutionReplace {
		return order.Replace
	}
	return order.Refund
}

// IsMonetary reports whether the buyer gets money back.
func (s Solution) IsMonetary() bool {
	return s == SolutionRefund
}

// ReturnMethod is how the goods travel back to the seller.
type ReturnMethod int

const (
	UnknownReturnMethod ReturnMethod = iota
	PickUp
	DropOff
)

func ReturnMethodFromString(s string) (ReturnMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pick up", "pickup", "pick-up":
		return PickUp, nil
	case "drop-off", "dropoff", "drop off":
		return DropOff, nil
	default:
		return UnknownReturnMethod, errs.NewValueIsInvalidErrorWithCause("return_method",
			fmt.Errorf("%q must be Pick Up or Drop-off", s))
	}
}

func (m ReturnMethod) Validate() error {
	if m != PickUp && m != DropOff {
		return errs.NewValueIsInvalidErrorWithCause("return_method", fmt.Errorf("%d is not a valid return method", m))
	}
	return nil
}

func (m ReturnMethod) String() string {
	switch m { //nolint:exhaustive // unknown falls through
	case PickUp:
		return "Pick Up"
	case DropOff:
		return "Drop-off"
	default:
		return "Unknown"
	}
}

// Status of a refund request.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	Approved
	Rejected
)

func (s Status) Validate() error {
	if s != Pending && s != Approved && s != Rejected {
		return errs.NewValueIsInvalidErrorWithCause("refund status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	switch s { //nolint:exhaustive // unknown falls through
	case Pending:
		return "Pending"
	case Approved:
		return "Approved"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

func StatusFromString(s string) (Status, error) {
	for _, st := range []Status{Pending, Approved, Rejected} {
		if strings.EqualFold(st.String(), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("refund status",
		fmt.Errorf("%q must be Pending, Approved or Rejected", s))
}
