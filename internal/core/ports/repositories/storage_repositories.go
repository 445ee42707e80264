package repositories

import (
	"context"
	"io"
	"time"

	"github.com/vinque/vinque_backend/internal/core/domain"
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ContentType string
	ModTime     time.Time
}

// FileStore holds uploaded files under slash-separated object keys.
type FileStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Open streams an object. Missing keys yield apperrors.ErrNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error)
	// Delete removes an object. Deleting a missing key succeeds.
	Delete(ctx context.Context, key string) error
}

// CleanupQueueRepository is the durable queue of pending file deletions.
type CleanupQueueRepository interface {
	Enqueue(ctx context.Context, keys ...string) error
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.CleanupTask, error)
	Complete(ctx context.Context, id int64) error
	Reschedule(ctx context.Context, id int64, next time.Time, lastErr string) error
}
