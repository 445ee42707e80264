package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/utils"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// conflictMessages maps unique indexes to the messages clients see.
var conflictMessages = map[string]string{
	"accounts_email_key":                "Email or phone number already exists.",
	"accounts_phone_key":                "Email or phone number already exists.",
	"accounts_username_key":             "Username already exists.",
	"accounts_business_permit_path_key": "Business permit already in use.",
	"orders_paypal_transaction_id_key":  "Order already recorded for this transaction.",
}

// psql builds dynamic statements with Postgres placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// DBPool is the subset of *pgxpool.Pool used by the repositories. pgxmock
// pools satisfy it too.
type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// querier is implemented by both pools and transactions.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool DBPool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// withTx runs fn inside a transaction, committing when fn succeeds.
func (r *BaseRepository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = r.Rollback(ctx, tx)
		return err
	}
	return r.Commit(ctx, tx)
}

// mapPgError turns driver errors into application errors. Unique violations
// become conflicts named after the violated index.
func mapPgError(err error, op string) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.As(err); ok {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError("Record not found")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			msg, ok := conflictMessages[pgErr.ConstraintName]
			if !ok {
				msg = "Record already exists."
			}
			return apperrors.NewConflictError(msg, err)
		case pgForeignKeyViolation:
			return apperrors.Wrap(apperrors.NewNotFoundError("Referenced record not found"), err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// enqueueCleanup records object keys for the file sweeper on q, which is
// normally the transaction that dropped the references.
func enqueueCleanup(ctx context.Context, q querier, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := q.Exec(ctx, `
		INSERT INTO file_cleanup_queue (object_key)
		SELECT unnest($1::text[])
		ON CONFLICT (object_key) DO UPDATE SET next_attempt_at = now()`, keys)
	if err != nil {
		return fmt.Errorf("enqueue file cleanup: %w", err)
	}
	return nil
}

// localObjectKeys filters stored references down to keys held by the file
// store, skipping empty values and external URLs.
func localObjectKeys(refs ...*string) []string {
	keys := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || *ref == "" || utils.IsExternalURL(*ref) {
			continue
		}
		if key := utils.ObjectKeyFromRef(*ref); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
