package commands

import (
	"context"
	"errors"
	"time"

	"shipment/internal/core/ports"
	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/guard"
)

var ErrPurgeAuditLogCommandIsNotConstructed = errors.New(
	"PurgeAuditLogCommand must be created via NewPurgeAuditLogCommand constructor",
)

// PurgeAuditLogCommand removes audit entries older than the retention period.
type PurgeAuditLogCommand struct {
	retention time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeAuditLogCommand(retention time.Duration) (PurgeAuditLogCommand, error) {
	if retention < 24*time.Hour {
		return PurgeAuditLogCommand{}, errs.NewValueIsOutOfRangeError("retention", retention, 24*time.Hour, "unbounded")
	}
	return PurgeAuditLogCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeAuditLogCommand) Validate() error {
	return c.guard.Validate(ErrPurgeAuditLogCommandIsNotConstructed)
}

func (c PurgeAuditLogCommand) Retention() time.Duration {
	return c.retention
}

type PurgeAuditLogCommandHandler struct {
	purger ports.AuditLogPurger
	now    func() time.Time
}

func NewPurgeAuditLogCommandHandler(purger ports.AuditLogPurger) PurgeAuditLogCommandHandler {
	return PurgeAuditLogCommandHandler{purger: purger, now: time.Now}
}

// Handle returns the number of purged entries.
func (h PurgeAuditLogCommandHandler) Handle(ctx context.Context, cmd PurgeAuditLogCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.purger.PurgeOlderThan(ctx, h.now().Add(-cmd.Retention()))
}
