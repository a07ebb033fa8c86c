// Package refundrepo persists refund requests.
package refundrepo

import (
	"time"

	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/refund"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundRequestDTO is the row of the refund_requests table.
type RefundRequestDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid"`
	AccountID     uuid.UUID `gorm:"type:uuid"`
	Reason        string
	Solution      int
	ReturnMethod  int
	ProofImage    *string
	PaymentMethod *string
	RefundAmount  decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Status        int
	ResolvedBy    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime:false"`
}

func (RefundRequestDTO) TableName() string {
	return "refund_requests"
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fromDomain(r *refund.Request) RefundRequestDTO {
	claim := r.Claim()
	dto := RefundRequestDTO{
		ID:            r.ID().Bytes(),
		OrderID:       r.OrderID().Bytes(),
		AccountID:     r.AccountID().Bytes(),
		Reason:        claim.Reason,
		Solution:      int(claim.Solution),
		ReturnMethod:  int(claim.ReturnMethod),
		ProofImage:    optional(claim.ProofImage),
		PaymentMethod: optional(claim.PaymentMethod),
		Status:        int(r.Status()),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
	if amount := r.RefundAmount(); amount != nil {
		dto.RefundAmount = decimal.NewNullDecimal(amount.Decimal())
	}
	if by := r.ResolvedBy(); by != nil {
		raw := by.Bytes()
		dto.ResolvedBy = &raw
	}
	return dto
}

func toDomain(dto RefundRequestDTO) (*refund.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	var amount *kernel.Money
	if dto.RefundAmount.Valid {
		m, moneyErr := kernel.NewMoney(dto.RefundAmount.Decimal)
		if moneyErr != nil {
			return nil, moneyErr
		}
		amount = &m
	}

	var resolvedBy *kernel.UUID
	if dto.ResolvedBy != nil {
		by, byErr := kernel.UUIDFromBytes((*dto.ResolvedBy)[:])
		if byErr != nil {
			return nil, byErr
		}
		resolvedBy = &by
	}

	return refund.RestoreRequest(id, orderID, accountID, refund.Claim{
		Reason:        dto.Reason,
		Solution:      refund.Solution(dto.Solution),
		ReturnMethod:  refund.ReturnMethod(dto.ReturnMethod),
		ProofImage:    deref(dto.ProofImage),
		PaymentMethod: deref(dto.PaymentMethod),
	}, amount, refund.Status(dto.Status), resolvedBy, dto.CreatedAt, dto.UpdatedAt)
}
