package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/pkg/errs"
)

const (
	NumberMaxLength        = 32
	PaymentMethodMaxLength = 50
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Details are the facts fixed when the order is placed. None of them change
// during the lifecycle.
type Details struct {
	Number        string
	AccountID     kernel.UUID
	ProductID     kernel.UUID
	SellerID      kernel.UUID
	Quantity      int
	TotalAmount   kernel.Money
	PaymentMethod string
	ShipTo        kernel.Address
}

// Order is the aggregate root of the shipment lifecycle. It is read by its
// buyer, but the right to mutate it depends on the action: the seller prepares
// it, a rider carries it, and the buyer confirms or disputes it.
//
// Order follows these invariants:
//   - status only moves along the edges declared in transitions
//   - OrderDelivered is only entered while a delivery proof is present
//   - the rider is bound exactly once, by Pickup, and never changes afterwards
//   - updatedAt moves on every accepted action
//
// Every accepted action appends a StatusChange that the persistence layer
// writes to the status history and publishes after commit.
type Order struct {
	id      kernel.UUID
	details Details

	// riderID is nil until Pickup
	riderID *kernel.UUID

	status Status

	// deliveryProof is the blob-store reference of the proof image
	deliveryProof string

	createdAt time.Time
	updatedAt time.Time

	changes []StatusChange

	isConstructed bool
}

// NewOrder places a new order in OrderPlaced.
//
// Parameters:
//   - id: unique identifier of the order
//   - details: buyer, product, seller, quantity, amount, payment and address
//   - at: placement time, used for both createdAt and updatedAt
//
// Returns:
//   - *Order: the placed order
//   - error: all validation failures joined together
func NewOrder(id kernel.UUID, details Details, at time.Time) (*Order, error) {
	o := &Order{
		status:        OrderPlaced,
		createdAt:     at.UTC(),
		updatedAt:     at.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from storage. It validates everything
// NewOrder does, plus the consistency between status, rider and proof.
func RestoreOrder(
	id kernel.UUID,
	details Details,
	status Status,
	riderID *kernel.UUID,
	deliveryProof string,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        status,
		riderID:       riderID,
		deliveryProof: deliveryProof,
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		status.Validate(),
		o.validateRider(),
		o.validateProof(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number is the human-facing order number.
func (o *Order) Number() string {
	return o.details.Number
}

// AccountID is the buyer.
func (o *Order) AccountID() kernel.UUID {
	return o.details.AccountID
}

func (o *Order) ProductID() kernel.UUID {
	return o.details.ProductID
}

// SellerID is the farmer who owns the ordered product.
func (o *Order) SellerID() kernel.UUID {
	return o.details.SellerID
}

func (o *Order) Quantity() int {
	return o.details.Quantity
}

func (o *Order) TotalAmount() kernel.Money {
	return o.details.TotalAmount
}

func (o *Order) PaymentMethod() string {
	return o.details.PaymentMethod
}

func (o *Order) ShipTo() kernel.Address {
	return o.details.ShipTo
}

func (o *Order) Details() Details {
	return o.details
}

func (o *Order) Status() Status {
	return o.status
}

// Rider returns the bound rider, or nil before pickup.
func (o *Order) Rider() *kernel.UUID {
	return o.riderID
}

func (o *Order) DeliveryProof() (string, bool) {
	return o.deliveryProof, o.deliveryProof != ""
}

func (o *Order) HasDeliveryProof() bool {
	return o.deliveryProof != ""
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Changes returns the status changes accepted since the order was loaded.
func (o *Order) Changes() []StatusChange {
	return o.changes
}

func (o *Order) ClearChanges() {
	o.changes = nil
}

// MarkAwaitingCourier is the seller announcing the parcel is ready for pickup.
func (o *Order) MarkAwaitingCourier(by actor.Actor, at time.Time) error {
	return o.transit(by, MarkAwaitingCourier, Unknown, at, nil, nil)
}

// Pickup binds the calling rider and moves the order into InTransit.
// A second pickup fails with InvalidTransition because InTransit has no
// Pickup edge; the persistence layer closes the race between two riders that
// both loaded WaitingForCourier.
func (o *Order) Pickup(by actor.Actor, at time.Time) error {
	return o.transit(by, Pickup, Unknown, at,
		func() error {
			if o.riderID != nil {
				return errs.NewPreconditionFailedError("rider", "is already bound")
			}
			return nil
		},
		func() {
			id := by.ID()
			o.riderID = &id
		},
	)
}

// AttachProof stores delivery evidence and leaves the order InTransit.
func (o *Order) AttachProof(by actor.Actor, proofRef string, at time.Time) error {
	return o.transit(by, AttachProof, Unknown, at,
		requireProofRef(proofRef),
		func() { o.deliveryProof = proofRef },
	)
}

// UploadProofAndDeliver stores delivery evidence and completes the delivery in
// one step.
func (o *Order) UploadProofAndDeliver(by actor.Actor, proofRef string, at time.Time) error {
	return o.transit(by, UploadProofAndDeliver, Unknown, at,
		requireProofRef(proofRef),
		func() { o.deliveryProof = proofRef },
	)
}

// ConfirmReceived completes the delivery on the buyer's (or seller's) word,
// which is only accepted once a proof has been attached.
func (o *Order) ConfirmReceived(by actor.Actor, at time.Time) error {
	return o.transit(by, ConfirmReceived, Unknown, at,
		func() error {
			if !o.HasDeliveryProof() {
				return errs.NewPreconditionFailedError("delivery proof", "is missing")
			}
			return nil
		},
		nil,
	)
}

// Cancel ends an order that has not been delivered yet. Terminal statuses
// have no Cancel edge.
func (o *Order) Cancel(by actor.Actor, at time.Time) error {
	return o.transit(by, Cancel, Unknown, at, nil, nil)
}

// MarkRefundRequested moves a delivered order to Pending. The caller is
// responsible for checking that no other request is pending.
func (o *Order) MarkRefundRequested(by actor.Actor, at time.Time) error {
	return o.transit(by, RequestRefund, Unknown, at, nil, nil)
}

// ApproveRefund resolves a pending dispute into outcome, which must be Refund
// or Replace.
func (o *Order) ApproveRefund(by actor.Actor, outcome Status, at time.Time) error {
	if outcome != Refund && outcome != Replace {
		return errs.NewValueIsInvalidErrorWithCause("outcome",
			fmt.Errorf("%s is not a refund outcome", outcome))
	}
	return o.transit(by, ApproveRefund, outcome, at, nil, nil)
}

// RejectRefund returns a pending order to OrderDelivered.
func (o *Order) RejectRefund(by actor.Actor, at time.Time) error {
	return o.transit(by, RejectRefund, Unknown, at, nil, nil)
}

// Authorize runs the role and relationship checks of action a without
// touching the order.
func (o *Order) Authorize(by actor.Actor, a Action) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if !a.Permits(by.Role()) {
		return errs.NewForbiddenError(a.String(), fmt.Sprintf("role %s cannot perform it", by.Role()))
	}
	if !o.relatesTo(by, a) {
		return errs.NewForbiddenError(a.String(), fmt.Sprintf("%s is not related to order %s", by.Role(), o.details.Number))
	}
	return nil
}

// transit is the single path through which the status changes. Checks run in
// a fixed order: role, relationship, edge, precondition.
func (o *Order) transit(
	by actor.Actor,
	a Action,
	target Status,
	at time.Time,
	precondition func() error,
	apply func(),
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.Authorize(by, a); err != nil {
		return err
	}

	var (
		next Status
		err  error
	)
	if target == Unknown {
		next, err = o.status.Next(a)
	} else {
		next, err = o.status.To(a, target)
	}
	if err != nil {
		return err
	}

	if precondition != nil {
		if err = precondition(); err != nil {
			return err
		}
	}
	if next == OrderDelivered && !o.HasDeliveryProof() && !a.NeedsProof() {
		return errs.NewPreconditionFailedError("delivery proof", "is missing")
	}

	if apply != nil {
		apply()
	}

	from := o.status
	o.status = next
	o.updatedAt = at.UTC()
	o.changes = append(o.changes, StatusChange{
		OrderID:     o.id,
		OrderNumber: o.details.Number,
		From:        from,
		To:          next,
		Action:      a,
		ActorID:     by.ID(),
		ActorRole:   by.Role(),
		At:          o.updatedAt,
	})
	return nil
}

func (o *Order) relatesTo(by actor.Actor, a Action) bool {
	switch by.Role() { //nolint:exhaustive // UnknownRole never passes Permits
	case actor.Admin:
		return true
	case actor.Farmer:
		return by.ID().IsEqual(o.details.SellerID)
	case actor.Consumer:
		return by.ID().IsEqual(o.details.AccountID)
	case actor.Rider:
		if a == Pickup {
			return true
		}
		return o.riderID != nil && by.ID().IsEqual(*o.riderID)
	default:
		return false
	}
}

func requireProofRef(ref string) func() error {
	return func() error {
		if strings.TrimSpace(ref) == "" {
			return errs.NewPreconditionFailedError("delivery proof", "image is not attached")
		}
		return nil
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(d Details) error {
	d.Number = strings.TrimSpace(d.Number)
	d.PaymentMethod = strings.TrimSpace(d.PaymentMethod)

	var numberErr, paymentErr, quantityErr error
	switch n := utf8.RuneCountInString(d.Number); {
	case n == 0:
		numberErr = errs.NewValueIsRequiredError("order_number")
	case n > NumberMaxLength:
		numberErr = errs.NewValueIsOutOfRangeError("order_number length", n, 1, NumberMaxLength)
	}
	switch n := utf8.RuneCountInString(d.PaymentMethod); {
	case n == 0:
		paymentErr = errs.NewValueIsRequiredError("payment_method")
	case n > PaymentMethodMaxLength:
		paymentErr = errs.NewValueIsOutOfRangeError("payment_method length", n, 1, PaymentMethodMaxLength)
	}
	if d.Quantity <= 0 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", d.Quantity, 1, "unbounded")
	}

	if err := errors.Join(
		numberErr,
		paymentErr,
		quantityErr,
		d.AccountID.Validate(),
		d.ProductID.Validate(),
		d.SellerID.Validate(),
		d.TotalAmount.Validate(),
		d.ShipTo.Validate(),
	); err != nil {
		return err
	}

	o.details = d
	return nil
}

// validateRider enforces that a rider is bound exactly from InTransit on,
// except for orders cancelled before pickup.
func (o *Order) validateRider() error {
	switch o.status { //nolint:exhaustive // remaining statuses are checked below
	case OrderPlaced, WaitingForCourier:
		if o.riderID != nil {
			return errs.NewValueIsInvalidErrorWithCause("rider",
				fmt.Errorf("%s orders cannot have a rider", o.status))
		}
	case Cancelled:
		// a rider may or may not have been bound before cancellation
	default:
		if o.riderID == nil && o.status != Unknown {
			return errs.NewValueIsInvalidErrorWithCause("rider",
				fmt.Errorf("%s orders must have a rider", o.status))
		}
	}
	if o.riderID != nil {
		return o.riderID.Validate()
	}
	return nil
}

func (o *Order) validateProof() error {
	switch o.status { //nolint:exhaustive // proof is optional elsewhere
	case OrderDelivered, Pending, Refund, Replace:
		if !o.HasDeliveryProof() {
			return errs.NewValueIsInvalidErrorWithCause("delivery proof",
				fmt.Errorf("%s orders must have a delivery proof", o.status))
		}
	}
	return nil
}
