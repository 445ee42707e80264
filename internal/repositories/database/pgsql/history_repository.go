package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
)

type PgxLoginHistoryRepository struct {
	BaseRepository
}

func newPgxLoginHistoryRepository(pool DBPool) portsrepo.LoginHistoryRepositoryFacade {
	return &PgxLoginHistoryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.LoginHistoryRepositoryFacade = (*PgxLoginHistoryRepository)(nil)

func (r *PgxLoginHistoryRepository) RecordLogin(ctx context.Context, session domain.LoginSession) (int64, error) {
	var id int64
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO login_history (user_id, role, first_name, last_name, login_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING history_id`,
		session.UserID, string(session.Role), session.FirstName, session.LastName, session.LoginAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to record login: %w", err)
	}
	return id, nil
}

func (r *PgxLoginHistoryRepository) RecordLogout(ctx context.Context, userID int64, role domain.Role) (bool, error) {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE login_history SET logout_at = now()
		WHERE history_id = (
			SELECT history_id FROM login_history
			WHERE user_id = $1 AND role = $2 AND logout_at IS NULL
			ORDER BY login_at DESC
			LIMIT 1
		)`, userID, string(role))
	if err != nil {
		return false, fmt.Errorf("failed to record logout: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *PgxLoginHistoryRepository) PurgeAndList(ctx context.Context, cutoff time.Time) ([]domain.LoginSession, error) {
	sessions := []domain.LoginSession{}
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM login_history WHERE login_at < $1`, cutoff); err != nil {
			return fmt.Errorf("failed to purge login history: %w", err)
		}
		rows, err := tx.Query(ctx, `
			SELECT history_id, user_id, role, first_name, last_name, login_at, logout_at
			FROM login_history
			ORDER BY login_at DESC`)
		if err != nil {
			return fmt.Errorf("failed to query login history: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var s domain.LoginSession
			var role string
			if err := rows.Scan(&s.HistoryID, &s.UserID, &role, &s.FirstName, &s.LastName, &s.LoginAt, &s.LogoutAt); err != nil {
				return fmt.Errorf("failed to scan login history row: %w", err)
			}
			s.Role = domain.Role(role)
			sessions = append(sessions, s)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
