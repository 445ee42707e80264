package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
)

type PgxCleanupQueueRepository struct {
	BaseRepository
}

func newPgxCleanupQueueRepository(pool DBPool) portsrepo.CleanupQueueRepository {
	return &PgxCleanupQueueRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CleanupQueueRepository = (*PgxCleanupQueueRepository)(nil)

func (r *PgxCleanupQueueRepository) Enqueue(ctx context.Context, keys ...string) error {
	return enqueueCleanup(ctx, r.Pool, keys)
}

// ClaimDue returns due tasks and pushes their next attempt a minute out, so
// concurrent sweepers skip them while the deletion is in flight.
func (r *PgxCleanupQueueRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.CleanupTask, error) {
	rows, err := r.Pool.Query(ctx, `
		UPDATE file_cleanup_queue SET next_attempt_at = $1::timestamptz + interval '1 minute'
		WHERE id IN (
			SELECT id FROM file_cleanup_queue
			WHERE next_attempt_at <= $1
			ORDER BY next_attempt_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, object_key, attempts`, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim cleanup tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.CleanupTask{}
	for rows.Next() {
		var t domain.CleanupTask
		if err := rows.Scan(&t.ID, &t.ObjectKey, &t.Attempts); err != nil {
			return nil, fmt.Errorf("failed to scan cleanup task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating cleanup tasks: %w", rows.Err())
	}
	return tasks, nil
}

func (r *PgxCleanupQueueRepository) Complete(ctx context.Context, id int64) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM file_cleanup_queue WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to complete cleanup task %d: %w", id, err)
	}
	return nil
}

func (r *PgxCleanupQueueRepository) Reschedule(ctx context.Context, id int64, next time.Time, lastErr string) error {
	_, err := r.Pool.Exec(ctx, `
		UPDATE file_cleanup_queue
		SET attempts = attempts + 1, last_error = $1, next_attempt_at = $2
		WHERE id = $3`, lastErr, next, id)
	if err != nil {
		return fmt.Errorf("failed to reschedule cleanup task %d: %w", id, err)
	}
	return nil
}
