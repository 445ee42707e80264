package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
)

type PgxOTPRepository struct {
	BaseRepository
}

func newPgxOTPRepository(pool DBPool) portsrepo.OTPRepositoryFacade {
	return &PgxOTPRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.OTPRepositoryFacade = (*PgxOTPRepository)(nil)

func (r *PgxOTPRepository) IssueCode(ctx context.Context, code domain.OTPCode, deliver func(ctx context.Context) error) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM otp_codes WHERE user_id = $1 AND is_verified = false`, code.UserID); err != nil {
			return fmt.Errorf("failed to clear pending codes: %w", err)
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO otp_codes (user_id, email, otp_code, expires_at)
			VALUES ($1, $2, $3, $4)`,
			code.UserID, code.Email, code.Code, code.ExpiresAt)
		if err != nil {
			return mapPgError(err, "insert otp code")
		}
		return deliver(ctx)
	})
}

func (r *PgxOTPRepository) ConsumeCode(ctx context.Context, userID int64, code string, now time.Time) (*domain.OTPCode, error) {
	var out domain.OTPCode
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			UPDATE otp_codes SET is_verified = true
			WHERE otp_id = (
				SELECT otp_id FROM otp_codes
				WHERE user_id = $1 AND otp_code = $2 AND is_verified = false AND expires_at > $3
				ORDER BY created_at DESC
				LIMIT 1
				FOR UPDATE
			)
			RETURNING otp_id, user_id, email, otp_code, expires_at, is_verified, created_at`,
			userID, code, now,
		).Scan(&out.OTPID, &out.UserID, &out.Email, &out.Code, &out.ExpiresAt, &out.IsVerified, &out.CreatedAt)
		if err != nil {
			return mapPgError(err, "consume otp code")
		}
		_, err = tx.Exec(ctx, `DELETE FROM otp_codes WHERE user_id = $1 AND otp_id <> $2`, userID, out.OTPID)
		if err != nil {
			return fmt.Errorf("failed to clear other codes: %w", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("Invalid or expired OTP")
		}
		return nil, err
	}
	return &out, nil
}
