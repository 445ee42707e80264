package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	"github.com/vinque/vinque_backend/internal/platform/metrics"
	"github.com/vinque/vinque_backend/internal/platform/upload"
	"github.com/vinque/vinque_backend/internal/utils"
)

// Upload directories inside the file store.
const (
	PermitDir  = "business_permits"
	ProductDir = "products"
	ProfileDir = "profiles"
)

// Nudger wakes the cleanup sweeper after queued deletions commit.
type Nudger interface {
	Nudge()
}

// fileKeeper writes uploads for request-scoped workflows and owns their
// compensation when the workflow fails.
type fileKeeper struct {
	BaseService
	store   portsrepo.FileStore
	queue   portsrepo.CleanupQueueRepository
	metrics *metrics.FileMetrics
	nudger  Nudger
	now     func() time.Time
}

func newFileKeeper(store portsrepo.FileStore, queue portsrepo.CleanupQueueRepository, fm *metrics.FileMetrics, nudger Nudger) *fileKeeper {
	return &fileKeeper{store: store, queue: queue, metrics: fm, nudger: nudger, now: time.Now}
}

// begin starts tracking the files written by one workflow.
func (k *fileKeeper) begin() *uploadBatch {
	return &uploadBatch{keeper: k}
}

// nudge asks the sweeper to run now that removed references have committed.
func (k *fileKeeper) nudge(keys []string) {
	if len(keys) == 0 || k.nudger == nil {
		return
	}
	k.nudger.Nudge()
}

// uploadBatch is the set of files written during one workflow. Files are
// removed by Release unless Commit was called first.
type uploadBatch struct {
	keeper    *fileKeeper
	keys      []string
	committed bool
}

// Put writes an inspected upload under dir and returns its object key.
func (b *uploadBatch) Put(ctx context.Context, dir string, f *upload.Inspected) (string, error) {
	key := utils.NewObjectKey(dir, f.Filename, b.keeper.now())
	if err := b.keeper.store.Put(ctx, key, f.Reader(), f.Size(), f.ContentType); err != nil {
		return "", fmt.Errorf("store upload %s: %w", key, err)
	}
	b.keys = append(b.keys, key)
	return key, nil
}

// Commit keeps every written file.
func (b *uploadBatch) Commit() {
	b.committed = true
}

// Release deletes the batch's files unless it was committed. A file that
// cannot be deleted is queued for the sweeper; the caller's outcome does not
// change either way.
func (b *uploadBatch) Release(ctx context.Context) {
	if b.committed || len(b.keys) == 0 {
		return
	}
	k := b.keeper
	ctx = context.WithoutCancel(ctx)
	for _, key := range b.keys {
		err := k.store.Delete(ctx, key)
		if err == nil {
			k.metrics.ObserveCompensation("deleted")
			k.LogInfo(ctx, "Removed upload after failed request", slog.String("object_key", key))
			continue
		}
		k.LogError(ctx, err, "Failed to remove upload after failed request", slog.String("object_key", key))
		if qerr := k.queue.Enqueue(ctx, key); qerr != nil {
			k.metrics.ObserveCompensation("failed")
			k.LogError(ctx, qerr, "Failed to queue orphaned upload for cleanup", slog.String("object_key", key))
			continue
		}
		k.metrics.ObserveCompensation("queued")
		k.nudge([]string{key})
	}
	b.keys = nil
}
