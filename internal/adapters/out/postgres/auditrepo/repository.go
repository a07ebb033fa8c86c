package auditrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipment/internal/core/ports"

	"gorm.io/gorm"
)

const insertBatchSize = 100

// GormAuditLog writes audit entries synchronously. Request handlers reach it
// through AsyncAuditLog.
type GormAuditLog struct {
	db *gorm.DB
}

func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{db: db}
}

func (l *GormAuditLog) Record(ctx context.Context, entry ports.AuditEntry) error {
	return l.RecordBatch(ctx, []ports.AuditEntry{entry})
}

// DroppedEntriesError reports the entries of a batch that could not be
// stored. The rest of the batch was written.
type DroppedEntriesError struct {
	Dropped int
	Err     error
}

func (e *DroppedEntriesError) Error() string {
	return fmt.Sprintf("%d audit entries dropped: %v", e.Dropped, e.Err)
}

func (e *DroppedEntriesError) Unwrap() error {
	return e.Err
}

// RecordBatch inserts entries in one statement per insertBatchSize rows. When
// the batch is rejected it falls back to one insert per entry, so a bad row
// only loses itself.
func (l *GormAuditLog) RecordBatch(ctx context.Context, entries []ports.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]APILogDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, fromEntry(e))
	}
	err := l.db.WithContext(ctx).CreateInBatches(&dtos, insertBatchSize).Error
	if err == nil {
		return nil
	}
	if len(dtos) == 1 || ctx.Err() != nil {
		return &DroppedEntriesError{Dropped: len(dtos), Err: err}
	}

	var failed []error
	for i := range dtos {
		dtos[i].ID = 0
		if rowErr := l.db.WithContext(ctx).Create(&dtos[i]).Error; rowErr != nil {
			failed = append(failed, fmt.Errorf("%s at %s: %w", dtos[i].Method, dtos[i].CreatedAt.Format(time.RFC3339), rowErr))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return &DroppedEntriesError{Dropped: len(failed), Err: errors.Join(failed...)}
}

// PurgeOlderThan deletes entries created before cutoff and returns how many
// were removed.
func (l *GormAuditLog) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := l.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&APILogDTO{})
	return result.RowsAffected, result.Error
}
