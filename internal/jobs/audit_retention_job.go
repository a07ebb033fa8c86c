package jobs

import (
	"context"
	"log/slog"
	"time"

	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// AuditRetentionSchedule runs the purge daily at 03:00.
const AuditRetentionSchedule = "0 0 3 * * *"

type AuditLogPurgeHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeAuditLogCommand) (int64, error)
}

// AuditRetentionJob deletes API log entries older than the retention period.
type AuditRetentionJob struct {
	handler   AuditLogPurgeHandler
	retention time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewAuditRetentionJob validates the retention up front so a bad
// AUDIT_RETENTION_DAYS fails at startup instead of every night.
func NewAuditRetentionJob(
	handler AuditLogPurgeHandler,
	retention time.Duration,
	logger *slog.Logger,
) (*AuditRetentionJob, error) {
	if _, err := commands.NewPurgeAuditLogCommand(retention); err != nil {
		return nil, err
	}
	return &AuditRetentionJob{
		handler:   handler,
		retention: retention,
		schedule:  AuditRetentionSchedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "audit_retention_job"),
	}, nil
}

// Run purges once. The cron entry calls it; tests call it directly.
func (j *AuditRetentionJob) Run(ctx context.Context) {
	cmd, err := commands.NewPurgeAuditLogCommand(j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Audit retention job misconfigured", "error", err)
		return
	}

	purged, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Audit retention job failed", "error", err)
		return
	}

	metrics.AuditPurgedTotal.Add(float64(purged))
	j.logger.InfoContext(ctx, "Audit log purged", "entries", purged, "retention", j.retention.String())
}

func (j *AuditRetentionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Audit retention job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running purge to finish.
func (j *AuditRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Audit retention job stopped")
}
