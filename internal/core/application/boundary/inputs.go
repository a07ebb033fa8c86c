package boundary

import (
	"errors"
	"io"

	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
)

// Caller is the identity the transport vouches for.
type Caller struct {
	ID   string `json:"actor_id"`
	Role string `json:"actor_role"`
}

// Actor parses the caller into a domain actor.
func (c Caller) Actor() (actor.Actor, error) {
	id, idErr := kernel.UUIDFromString(c.ID)
	role, roleErr := actor.RoleFromString(c.Role)
	if err := errors.Join(idErr, roleErr); err != nil {
		return actor.Actor{}, err
	}
	return actor.NewActor(id, role)
}

// Upload is an image received with a request. Only its metadata is audited.
type Upload struct {
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Body        io.Reader `json:"-"`
}

func (u *Upload) image() (*commands.ImageUpload, error) {
	if u == nil {
		return nil, nil
	}
	img, err := commands.NewImageUpload(u.Filename, u.ContentType, u.Size, u.Body)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

type PlaceOrderInput struct {
	Caller
	ProductID     string `json:"product_id"`
	SellerID      string `json:"seller_id"`
	Quantity      int    `json:"quantity"`
	TotalAmount   string `json:"total_amount"`
	PaymentMethod string `json:"payment_method"`
	ShipTo        string `json:"ship_to"`
}

func (in PlaceOrderInput) command() (commands.CreateOrderCommand, error) {
	by, err := in.Actor()
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	productID, productErr := kernel.UUIDFromString(in.ProductID)
	sellerID, sellerErr := kernel.UUIDFromString(in.SellerID)
	if err = errors.Join(productErr, sellerErr); err != nil {
		return commands.CreateOrderCommand{}, err
	}
	return commands.NewCreateOrderCommand(by, productID, sellerID, in.Quantity, in.TotalAmount, in.PaymentMethod, in.ShipTo)
}

type ApplyTransitionInput struct {
	Caller
	OrderID string  `json:"order_id"`
	Action  string  `json:"action"`
	Proof   *Upload `json:"delivery_proof,omitempty"`
}

func (in ApplyTransitionInput) command() (commands.ApplyTransitionCommand, error) {
	by, err := in.Actor()
	if err != nil {
		return commands.ApplyTransitionCommand{}, err
	}
	orderID, idErr := kernel.UUIDFromString(in.OrderID)
	action, actionErr := order.ActionFromString(in.Action)
	proof, proofErr := in.Proof.image()
	if err = errors.Join(idErr, actionErr, proofErr); err != nil {
		return commands.ApplyTransitionCommand{}, err
	}
	return commands.NewApplyTransitionCommand(orderID, by, action, proof)
}

type RequestRefundInput struct {
	Caller
	OrderID       string  `json:"order_id"`
	Reason        string  `json:"reason"`
	Solution      string  `json:"solution"`
	ReturnMethod  string  `json:"return_method"`
	PaymentMethod string  `json:"payment_method"`
	Image         *Upload `json:"image,omitempty"`
}

func (in RequestRefundInput) command() (commands.RequestRefundCommand, error) {
	by, err := in.Actor()
	if err != nil {
		return commands.RequestRefundCommand{}, err
	}
	orderID, idErr := kernel.UUIDFromString(in.OrderID)
	img, imgErr := in.Image.image()
	if err = errors.Join(idErr, imgErr); err != nil {
		return commands.RequestRefundCommand{}, err
	}
	return commands.NewRequestRefundCommand(orderID, by, in.Reason, in.Solution, in.ReturnMethod, in.PaymentMethod, img)
}

// DecideRefundInput approves or rejects one refund request.
type DecideRefundInput struct {
	Caller
	RequestID string `json:"request_id"`
}

func (in DecideRefundInput) parse() (kernel.UUID, actor.Actor, error) {
	by, err := in.Actor()
	if err != nil {
		return kernel.UUID{}, actor.Actor{}, err
	}
	id, err := kernel.UUIDFromString(in.RequestID)
	if err != nil {
		return kernel.UUID{}, actor.Actor{}, err
	}
	return id, by, nil
}
