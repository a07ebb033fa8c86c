package commands

import (
	"time"

	"shipment/internal/core/domain/model/order"
	"shipment/internal/core/domain/model/refund"
)

// OrderView is the order projection returned by every successful command.
type OrderView struct {
	ID            string    `json:"id"`
	Number        string    `json:"order_number"`
	AccountID     string    `json:"account_id"`
	ProductID     string    `json:"product_id"`
	SellerID      string    `json:"seller_id"`
	RiderID       *string   `json:"rider_id"`
	Quantity      int       `json:"quantity"`
	TotalAmount   string    `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	ShipTo        string    `json:"ship_to"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	DeliveryProof *string   `json:"delivery_proof"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewOrderView(o *order.Order) OrderView {
	v := OrderView{
		ID:            o.ID().String(),
		Number:        o.Number(),
		AccountID:     o.AccountID().String(),
		ProductID:     o.ProductID().String(),
		SellerID:      o.SellerID().String(),
		Quantity:      o.Quantity(),
		TotalAmount:   o.TotalAmount().String(),
		PaymentMethod: o.PaymentMethod(),
		ShipTo:        o.ShipTo().String(),
		Status:        o.Status().String(),
		StatusLabel:   o.Status().Label(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
	if rider := o.Rider(); rider != nil {
		id := rider.String()
		v.RiderID = &id
	}
	if proof, ok := o.DeliveryProof(); ok {
		v.DeliveryProof = &proof
	}
	return v
}

// RefundView is the refund request projection.
type RefundView struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	AccountID     string    `json:"account_id"`
	Reason        string    `json:"reason"`
	Solution      string    `json:"solution"`
	ReturnMethod  string    `json:"return_method"`
	ProofImage    *string   `json:"proof_image"`
	PaymentMethod *string   `json:"payment_method"`
	RefundAmount  *string   `json:"refund_amount"`
	Status        string    `json:"status"`
	ResolvedBy    *string   `json:"resolved_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewRefundView(r *refund.Request) RefundView {
	claim := r.Claim()
	v := RefundView{
		ID:           r.ID().String(),
		OrderID:      r.OrderID().String(),
		AccountID:    r.AccountID().String(),
		Reason:       claim.Reason,
		Solution:     claim.Solution.String(),
		ReturnMethod: claim.ReturnMethod.String(),
		Status:       r.Status().String(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
	if claim.ProofImage != "" {
		v.ProofImage = &claim.ProofImage
	}
	if claim.PaymentMethod != "" {
		v.PaymentMethod = &claim.PaymentMethod
	}
	if amount := r.RefundAmount(); amount != nil {
		s := amount.String()
		v.RefundAmount = &s
	}
	if by := r.ResolvedBy(); by != nil {
		s := by.String()
		v.ResolvedBy = &s
	}
	return v
}

// RefundOutcome is returned by the refund commands, which change both the
// request and its order.
type RefundOutcome struct {
	Order  OrderView
	Refund RefundView
}
