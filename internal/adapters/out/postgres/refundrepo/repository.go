package refundrepo

import (
	"context"
	"errors"

	"shipment/internal/adapters/out/postgres/pgerrors"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/refund"
	"shipment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRefundRepository implements ports.RefundRepository using GORM.
type GormRefundRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRefundRepository(db *gorm.DB, tracker aggregateTracker) *GormRefundRepository {
	return &GormRefundRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new request. The partial unique index on pending requests
// turns a concurrent second request into a ConflictError.
func (r *GormRefundRepository) Add(ctx context.Context, request *refund.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("refund request for order", request.OrderID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

func (r *GormRefundRepository) Get(ctx context.Context, id kernel.UUID) (*refund.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RefundRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("refund request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormRefundRepository) FindPendingByOrder(ctx context.Context, orderID kernel.UUID) (*refund.Request, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RefundRequestDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID.Bytes(), int(refund.Pending)).
		Limit(1).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, nil //nolint:nilnil // no pending request is a valid answer
	}

	return toDomain(dtos[0])
}

// UpdateIfStatus writes the decision guarded by the status the request was
// read in.
func (r *GormRefundRepository) UpdateIfStatus(ctx context.Context, request *refund.Request, expected refund.Status) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	result := r.db.WithContext(ctx).Model(&RefundRequestDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Updates(map[string]any{
			"status":      dto.Status,
			"resolved_by": dto.ResolvedBy,
			"updated_at":  dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("refund request", request.ID().String())
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}
