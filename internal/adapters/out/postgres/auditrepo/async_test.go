package auditrepo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"shipment/internal/adapters/out/postgres/auditrepo"
	"shipment/internal/core/ports"
	"shipment/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	mu      sync.Mutex
	entries []ports.AuditEntry
	err     error
}

func (w *recordingWriter) RecordBatch(_ context.Context, entries []ports.AuditEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.entries = append(w.entries, entries...)
	return nil
}

func (w *recordingWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

func TestAsyncAuditLog(t *testing.T) {
	t.Run("should flush queued entries on shutdown", func(t *testing.T) {
		w := &recordingWriter{}
		log := auditrepo.NewAsyncAuditLog(w, 10, nil)
		ctx, cancel := context.WithCancel(t.Context())

		for range 3 {
			require.NoError(t, log.Record(ctx, ports.AuditEntry{Method: "applyTransition", At: time.Now()}))
		}

		done := make(chan error)
		go func() { done <- log.Run(ctx) }()
		cancel()

		require.NoError(t, <-done)
		assert.Equal(t, 3, w.count())
	})

	t.Run("should drop entries instead of blocking when full", func(t *testing.T) {
		w := &recordingWriter{}
		log := auditrepo.NewAsyncAuditLog(w, 2, nil)

		for range 5 {
			require.NoError(t, log.Record(t.Context(), ports.AuditEntry{Method: "approveRefund"}))
		}

		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		require.NoError(t, log.Run(ctx))
		assert.Equal(t, 2, w.count())
	})

	t.Run("should swallow writer errors", func(t *testing.T) {
		w := &recordingWriter{err: errors.New("db down")}
		log := auditrepo.NewAsyncAuditLog(w, 4, nil)
		require.NoError(t, log.Record(t.Context(), ports.AuditEntry{Method: "requestRefund"}))

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		require.NoError(t, log.Run(ctx))
		assert.Zero(t, w.count())
	})

	t.Run("should count only the entries the writer dropped", func(t *testing.T) {
		before := testutil.ToFloat64(metrics.AuditDropsTotal)
		w := &recordingWriter{err: &auditrepo.DroppedEntriesError{Dropped: 1, Err: errors.New("value too long")}}
		log := auditrepo.NewAsyncAuditLog(w, 4, nil)
		for range 3 {
			require.NoError(t, log.Record(t.Context(), ports.AuditEntry{Method: "placeOrder"}))
		}

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		require.NoError(t, log.Run(ctx))
		assert.InDelta(t, 1, testutil.ToFloat64(metrics.AuditDropsTotal)-before, 0.001)
	})

	t.Run("should write while running", func(t *testing.T) {
		w := &recordingWriter{}
		log := auditrepo.NewAsyncAuditLog(w, 10, nil)
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()
		go func() { _ = log.Run(ctx) }()

		require.NoError(t, log.Record(ctx, ports.AuditEntry{Method: "placeOrder"}))

		assert.Eventually(t, func() bool { return w.count() == 1 }, 3*time.Second, 20*time.Millisecond)
	})
}
