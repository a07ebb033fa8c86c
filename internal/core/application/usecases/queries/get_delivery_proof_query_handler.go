package queries

import (
	"context"
	"database/sql"
	"time"

	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/ports"
	"shipment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDeliveryProofQueryHandler struct {
	db    *gorm.DB
	blobs ports.BlobStorage
	now   func() time.Time
}

func NewGetDeliveryProofQueryHandler(db *gorm.DB, blobs ports.BlobStorage) GetDeliveryProofQueryHandler {
	return GetDeliveryProofQueryHandler{db: db, blobs: blobs, now: time.Now}
}

func (h GetDeliveryProofQueryHandler) Handle(ctx context.Context, query GetDeliveryProofQuery) (DeliveryProof, error) {
	if err := query.Validate(); err != nil {
		return DeliveryProof{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT seller_id, delivery_proof
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return DeliveryProof{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryProof{}, err
		}
		return DeliveryProof{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	var (
		sellerID uuid.UUID
		proof    sql.NullString
	)
	if err = rows.Scan(&sellerID, &proof); err != nil {
		return DeliveryProof{}, err
	}

	seller, err := kernel.UUIDFromBytes(sellerID[:])
	if err != nil {
		return DeliveryProof{}, err
	}
	by := query.By()
	if by.Role() != actor.Admin && !by.Is(actor.Farmer, seller) {
		return DeliveryProof{}, errs.NewForbiddenError("view delivery proof", "only the seller or an admin may view it")
	}
	if !proof.Valid || proof.String == "" {
		return DeliveryProof{}, errs.NewObjectNotFoundError("delivery proof", query.OrderID())
	}

	issuedAt := h.now()
	url, err := h.blobs.PresignedURL(ctx, proof.String, DeliveryProofURLTTL)
	if err != nil {
		return DeliveryProof{}, err
	}
	return DeliveryProof{
		OrderID:   query.OrderID().String(),
		URL:       url,
		ExpiresAt: issuedAt.Add(DeliveryProofURLTTL).UTC(),
	}, nil
}
