package ports

import (
	"context"
	"encoding/json"
	"time"
)

// AuditEntry is one call to a core action, successful or not.
type AuditEntry struct {
	Method    string
	ActorID   string
	ActorRole string
	Request   json.RawMessage
	Response  json.RawMessage
	Outcome   string
	At        time.Time
}

// AuditLog is an append-only call log. Callers ignore its errors beyond
// logging them; Record must not block on storage.
type AuditLog interface {
	Record(ctx context.Context, entry AuditEntry) error
}

// AuditLogPurger removes entries older than a cutoff.
type AuditLogPurger interface {
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
