package refund

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/pkg/errs"
)

const (
	ReasonMaxLength        = 255
	PaymentMethodMaxLength = 50
)

var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest constructor")

// Claim is what the buyer submits with a refund request.
type Claim struct {
	Reason       string
	Solution     Solution
	ReturnMethod ReturnMethod
	// ProofImage is an optional blob reference to a photo of the goods.
	ProofImage string
	// PaymentMethod receives the money back. Required unless Solution is Replace.
	PaymentMethod string
}

// Request is a post-delivery dispute over one order. At most one request per
// order can be Pending at a time; that rule is enforced by the workflow and by
// a partial unique index in storage.
type Request struct {
	id        kernel.UUID
	orderID   kernel.UUID
	accountID kernel.UUID
	claim     Claim

	// refundAmount is set iff the solution is monetary
	refundAmount *kernel.Money

	status     Status
	resolvedBy *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewRequest opens a Pending request against o. The refund amount is the
// order total when the solution is monetary.
func NewRequest(id kernel.UUID, o *order.Order, claim Claim, at time.Time) (*Request, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	r := &Request{
		orderID:       o.ID(),
		accountID:     o.AccountID(),
		status:        Pending,
		createdAt:     at.UTC(),
		updatedAt:     at.UTC(),
		isConstructed: true,
	}
	if err := errors.Join(r.setID(id), r.setClaim(claim)); err != nil {
		return nil, err
	}

	if claim.Solution.IsMonetary() {
		amount := o.TotalAmount()
		r.refundAmount = &amount
	}
	return r, nil
}

// RestoreRequest rebuilds a request read from storage.
func RestoreRequest(
	id, orderID, accountID kernel.UUID,
	claim Claim,
	refundAmount *kernel.Money,
	status Status,
	resolvedBy *kernel.UUID,
	createdAt, updatedAt time.Time,
) (*Request, error) {
	r := &Request{
		orderID:       orderID,
		accountID:     accountID,
		refundAmount:  refundAmount,
		status:        status,
		resolvedBy:    resolvedBy,
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}

	var amountErr error
	if claim.Solution.IsMonetary() != (refundAmount != nil) {
		amountErr = errs.NewValueIsInvalidError("refund_amount must be present iff the solution is Refund")
	}

	if err := errors.Join(
		r.setID(id),
		orderID.Validate(),
		accountID.Validate(),
		r.setClaim(claim),
		status.Validate(),
		amountErr,
	); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

func (r *Request) ID() kernel.UUID {
	return r.id
}

func (r *Request) OrderID() kernel.UUID {
	return r.orderID
}

func (r *Request) AccountID() kernel.UUID {
	return r.accountID
}

func (r *Request) Claim() Claim {
	return r.claim
}

func (r *Request) Reason() string {
	return r.claim.Reason
}

func (r *Request) Solution() Solution {
	return r.claim.Solution
}

func (r *Request) ReturnMethod() ReturnMethod {
	return r.claim.ReturnMethod
}

// RefundAmount is nil for replacements.
func (r *Request) RefundAmount() *kernel.Money {
	return r.refundAmount
}

func (r *Request) Status() Status {
	return r.status
}

func (r *Request) ResolvedBy() *kernel.UUID {
	return r.resolvedBy
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

// Approve accepts a Pending request. Approving a request that was already
// decided fails with a PreconditionFailedError.
func (r *Request) Approve(by actor.Actor, at time.Time) error {
	return r.resolve(by, Approved, at)
}

// Reject declines a Pending request.
func (r *Request) Reject(by actor.Actor, at time.Time) error {
	return r.resolve(by, Rejected, at)
}

func (r *Request) resolve(by actor.Actor, to Status, at time.Time) error {
	if err := errors.Join(r.Validate(), by.Validate()); err != nil {
		return err
	}
	if r.status != Pending {
		return errs.NewPreconditionFailedError("refund request", "is already "+strings.ToLower(r.status.String()))
	}

	id := by.ID()
	r.status = to
	r.resolvedBy = &id
	r.updatedAt = at.UTC()
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setClaim(c Claim) error {
	c.Reason = strings.TrimSpace(c.Reason)
	c.PaymentMethod = strings.TrimSpace(c.PaymentMethod)
	c.ProofImage = strings.TrimSpace(c.ProofImage)

	var reasonErr, paymentErr error
	switch n := utf8.RuneCountInString(c.Reason); {
	case n == 0:
		reasonErr = errs.NewValueIsRequiredError("reason")
	case n > ReasonMaxLength:
		reasonErr = errs.NewValueIsOutOfRangeError("reason length", n, 1, ReasonMaxLength)
	}

	switch n := utf8.RuneCountInString(c.PaymentMethod); {
	case n == 0 && c.Solution != SolutionReplace:
		paymentErr = errs.NewValueIsRequiredError("payment_method")
	case n > PaymentMethodMaxLength:
		paymentErr = errs.NewValueIsOutOfRangeError("payment_method length", n, 1, PaymentMethodMaxLength)
	}

	if err := errors.Join(
		reasonErr,
		paymentErr,
		c.Solution.Validate(),
		c.ReturnMethod.Validate(),
	); err != nil {
		return err
	}

	r.claim = c
	return nil
}
