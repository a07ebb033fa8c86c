package auditrepo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shipment/internal/core/ports"
	"shipment/internal/pkg/metrics"
)

type batchWriter interface {
	RecordBatch(ctx context.Context, entries []ports.AuditEntry) error
}

const (
	defaultCapacity   = 1024
	defaultBatchSize  = 50
	defaultFlushEvery = time.Second
	flushTimeout      = 5 * time.Second
)

// AsyncAuditLog queues entries in memory and writes them in batches from a
// single goroutine started by Run. Record never blocks: when the queue is
// full the entry is dropped and counted.
type AsyncAuditLog struct {
	writer     batchWriter
	entries    chan ports.AuditEntry
	batchSize  int
	flushEvery time.Duration
	logger     *slog.Logger
}

func NewAsyncAuditLog(writer batchWriter, capacity int, logger *slog.Logger) *AsyncAuditLog {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AsyncAuditLog{
		writer:     writer,
		entries:    make(chan ports.AuditEntry, capacity),
		batchSize:  defaultBatchSize,
		flushEvery: defaultFlushEvery,
		logger:     logger.With("component", "AuditLog"),
	}
}

// Record enqueues entry. It returns nil even when the entry is dropped; drops
// are visible through logs and metrics only.
func (l *AsyncAuditLog) Record(ctx context.Context, entry ports.AuditEntry) error {
	select {
	case l.entries <- entry:
	default:
		metrics.AuditDropsTotal.Inc()
		l.logger.WarnContext(ctx, "audit queue is full, dropping entry", "method", entry.Method)
	}
	return nil
}

// Run drains the queue until ctx is cancelled, then flushes what is left.
func (l *AsyncAuditLog) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.flushEvery)
	defer ticker.Stop()

	batch := make([]ports.AuditEntry, 0, l.batchSize)
	flush := func(ctx context.Context) {
		if len(batch) == 0 {
			return
		}
		if err := l.writer.RecordBatch(ctx, batch); err != nil {
			dropped := len(batch)
			var partial *DroppedEntriesError
			if errors.As(err, &partial) {
				dropped = partial.Dropped
			}
			metrics.AuditDropsTotal.Add(float64(dropped))
			l.logger.ErrorContext(ctx, "failed to write audit entries",
				"entries", len(batch),
				"dropped", dropped,
				"error", err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case entry := <-l.entries:
			batch = append(batch, entry)
			if len(batch) >= l.batchSize {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		case <-ctx.Done():
			l.drain(&batch)
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
			flush(shutdownCtx)
			cancel()
			return nil
		}
	}
}

func (l *AsyncAuditLog) drain(batch *[]ports.AuditEntry) {
	for {
		select {
		case entry := <-l.entries:
			*batch = append(*batch, entry)
		default:
			return
		}
	}
}
