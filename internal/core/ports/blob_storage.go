package ports

import (
	"context"
	"io"
	"time"
)

// Blob is an object to store: delivery proofs and refund images.
type Blob struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
}

// BlobStorage keeps uploaded evidence. The core only keeps the returned
// reference.
type BlobStorage interface {
	// Store writes the blob and returns the reference to persist.
	Store(ctx context.Context, blob Blob) (string, error)

	// Delete removes ref. Deleting a missing object is not an error.
	Delete(ctx context.Context, ref string) error

	// PresignedURL returns a time-limited download link for ref.
	PresignedURL(ctx context.Context, ref string, ttl time.Duration) (string, error)
}
