package services

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	"github.com/vinque/vinque_backend/internal/platform/metrics"
)

const (
	sweepBatchSize  = 50
	sweepBaseDelay  = 30 * time.Second
	sweepMaxBackoff = time.Hour
)

// CleanupSweeper deletes queued files in the background, retrying failures
// with exponential backoff.
type CleanupSweeper struct {
	queue    portsrepo.CleanupQueueRepository
	store    portsrepo.FileStore
	metrics  *metrics.FileMetrics
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time
	wake     chan struct{}
}

// NewCleanupSweeper creates a sweeper that runs every interval.
func NewCleanupSweeper(queue portsrepo.CleanupQueueRepository, store portsrepo.FileStore, fm *metrics.FileMetrics, interval time.Duration, logger *slog.Logger) *CleanupSweeper {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &CleanupSweeper{
		queue:    queue,
		store:    store,
		metrics:  fm,
		logger:   logger.With(slog.String("component", "cleanup_sweeper")),
		interval: interval,
		now:      time.Now,
		wake:     make(chan struct{}, 1),
	}
}

var _ Nudger = (*CleanupSweeper)(nil)

// Nudge requests an early sweep. It never blocks.
func (s *CleanupSweeper) Nudge() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run sweeps until ctx is cancelled.
func (s *CleanupSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Cleanup sweeper started", slog.Duration("interval", s.interval))
	for {
		if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("Cleanup sweep failed", slog.String("error", err.Error()))
		}
		select {
		case <-ctx.Done():
			s.logger.Info("Cleanup sweeper stopped")
			return
		case <-ticker.C:
		case <-s.wake:
		}
	}
}

// SweepOnce processes one batch of due tasks and returns how many files were deleted.
func (s *CleanupSweeper) SweepOnce(ctx context.Context) (int, error) {
	now := s.now()
	tasks, err := s.queue.ClaimDue(ctx, now, sweepBatchSize)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, task := range tasks {
		if err := s.store.Delete(ctx, task.ObjectKey); err != nil {
			s.metrics.ObserveSweep("retry")
			next := now.Add(cleanupBackoff(task.Attempts))
			s.logger.Warn("Queued file deletion failed",
				slog.String("object_key", task.ObjectKey),
				slog.Int("attempts", task.Attempts+1),
				slog.Time("next_attempt_at", next),
				slog.String("error", err.Error()))
			if rerr := s.queue.Reschedule(ctx, task.ID, next, err.Error()); rerr != nil {
				return deleted, rerr
			}
			continue
		}
		if err := s.queue.Complete(ctx, task.ID); err != nil {
			return deleted, err
		}
		s.metrics.ObserveSweep("deleted")
		deleted++
	}
	if deleted > 0 {
		s.logger.Info("Cleanup sweep removed files", slog.Int("deleted", deleted))
	}
	return deleted, nil
}

// cleanupBackoff doubles the retry delay per failed attempt, capped at an hour.
func cleanupBackoff(attempts int) time.Duration {
	d := sweepBaseDelay
	for i := 0; i < attempts; i++ {
		d *= 2
		if d >= sweepMaxBackoff {
			return sweepMaxBackoff
		}
	}
	return d
}
