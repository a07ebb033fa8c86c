// Package orderrepo persists order aggregates and their status history.
package orderrepo

import (
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number        string     `gorm:"column:order_number"`
	AccountID     uuid.UUID  `gorm:"type:uuid"`
	ProductID     uuid.UUID  `gorm:"type:uuid"`
	SellerID      uuid.UUID  `gorm:"type:uuid"`
	RiderID       *uuid.UUID `gorm:"type:uuid"`
	Quantity      int
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentMethod string
	ShipTo        string
	Status        int
	DeliveryProof *string
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// StatusChangeDTO is one row of order_status_history.
type StatusChangeDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid"`
	FromStatus int
	ToStatus   int
	Action     string
	ActorID    uuid.UUID `gorm:"type:uuid"`
	ActorRole  string
	ChangedAt  time.Time
}

func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:            o.ID().Bytes(),
		Number:        o.Number(),
		AccountID:     o.AccountID().Bytes(),
		ProductID:     o.ProductID().Bytes(),
		SellerID:      o.SellerID().Bytes(),
		Quantity:      o.Quantity(),
		TotalAmount:   o.TotalAmount().Decimal(),
		PaymentMethod: o.PaymentMethod(),
		ShipTo:        o.ShipTo().String(),
		Status:        int(o.Status()),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
	if rider := o.Rider(); rider != nil {
		raw := rider.Bytes()
		dto.RiderID = &raw
	}
	if proof, ok := o.DeliveryProof(); ok {
		dto.DeliveryProof = &proof
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}
	shipTo, err := kernel.NewAddress(dto.ShipTo)
	if err != nil {
		return nil, err
	}

	var proof string
	if dto.DeliveryProof != nil {
		proof = *dto.DeliveryProof
	}

	return order.RestoreOrder(id, order.Details{
		Number:        dto.Number,
		AccountID:     accountID,
		ProductID:     productID,
		SellerID:      sellerID,
		Quantity:      dto.Quantity,
		TotalAmount:   total,
		PaymentMethod: dto.PaymentMethod,
		ShipTo:        shipTo,
	}, order.Status(dto.Status), riderID, proof, dto.CreatedAt, dto.UpdatedAt)
}

func changesFromDomain(changes []order.StatusChange) []StatusChangeDTO {
	dtos := make([]StatusChangeDTO, 0, len(changes))
	for _, c := range changes {
		dtos = append(dtos, StatusChangeDTO{
			OrderID:    c.OrderID.Bytes(),
			FromStatus: int(c.From),
			ToStatus:   int(c.To),
			Action:     c.Action.String(),
			ActorID:    c.ActorID.Bytes(),
			ActorRole:  c.ActorRole.String(),
			ChangedAt:  c.At,
		})
	}
	return dtos
}
