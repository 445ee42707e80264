package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for accounts and role profiles.
func newPgxAccountRepository(pool DBPool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const loginRecordSelect = `
	SELECT a.user_id, a.username, a.password_hash, a.role, a.email, a.phone,
	       a.business_permit_path, a.created_at,
	       COALESCE(c.first_name, s.first_name, ''), COALESCE(c.last_name, s.last_name, ''),
	       s.seller_id, c.customer_id, s.approval_status
	FROM accounts a
	LEFT JOIN customers c ON c.user_id = a.user_id
	LEFT JOIN sellers s ON s.user_id = a.user_id`

func scanLoginRecord(row pgx.Row) (*domain.LoginRecord, error) {
	var rec domain.LoginRecord
	var role string
	var status *string
	err := row.Scan(
		&rec.Account.UserID,
		&rec.Account.Username,
		&rec.Account.PasswordHash,
		&role,
		&rec.Account.Email,
		&rec.Account.Phone,
		&rec.Account.BusinessPermitPath,
		&rec.Account.CreatedAt,
		&rec.FirstName,
		&rec.LastName,
		&rec.SellerID,
		&rec.CustomerID,
		&status,
	)
	if err != nil {
		return nil, err
	}
	rec.Account.Role = domain.Role(role)
	if status != nil {
		s := domain.ApprovalStatus(*status)
		rec.ApprovalStatus = &s
	}
	return &rec, nil
}

func (r *PgxAccountRepository) FindLoginRecordByUsername(ctx context.Context, username string) (*domain.LoginRecord, error) {
	rec, err := scanLoginRecord(r.Pool.QueryRow(ctx, loginRecordSelect+`
	WHERE lower(a.username) = lower($1)`, username))
	if err != nil {
		return nil, mapPgError(err, "find account by username")
	}
	return rec, nil
}

func (r *PgxAccountRepository) FindLoginRecordByIdentifier(ctx context.Context, email, username string) (*domain.LoginRecord, error) {
	rec, err := scanLoginRecord(r.Pool.QueryRow(ctx, loginRecordSelect+`
	WHERE lower(a.email) = lower($1) OR lower(a.username) = lower($2)
	ORDER BY (lower(a.email) = lower($1)) DESC
	LIMIT 1`, email, username))
	if err != nil {
		return nil, mapPgError(err, "find account by identifier")
	}
	return rec, nil
}

func (r *PgxAccountRepository) FindLoginRecordByUserID(ctx context.Context, userID int64) (*domain.LoginRecord, error) {
	rec, err := scanLoginRecord(r.Pool.QueryRow(ctx, loginRecordSelect+`
	WHERE a.user_id = $1`, userID))
	if err != nil {
		return nil, mapPgError(err, "find account by id")
	}
	return rec, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT user_id, username, role, email, phone, business_permit_path, created_at
		FROM accounts
		ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var a domain.Account
		var role string
		if err := rows.Scan(&a.UserID, &a.Username, &role, &a.Email, &a.Phone, &a.BusinessPermitPath, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		a.Role = domain.Role(role)
		accounts = append(accounts, a)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rows.Err())
	}
	return accounts, nil
}

const sellerProfileSelect = `
	SELECT seller_id, user_id, business_name, first_name, last_name, business_address,
	       email, phone, paypal_number, business_permit_file, approval_status,
	       business_description, seller_image
	FROM sellers`

func scanSellerProfile(row pgx.Row) (*domain.SellerProfile, error) {
	var s domain.SellerProfile
	var status string
	err := row.Scan(
		&s.SellerID,
		&s.UserID,
		&s.BusinessName,
		&s.FirstName,
		&s.LastName,
		&s.BusinessAddress,
		&s.Email,
		&s.Phone,
		&s.PaypalNumber,
		&s.BusinessPermitFile,
		&status,
		&s.BusinessDescription,
		&s.SellerImage,
	)
	if err != nil {
		return nil, err
	}
	s.ApprovalStatus = domain.ApprovalStatus(status)
	return &s, nil
}

func (r *PgxAccountRepository) listSellers(ctx context.Context, query string, args ...any) ([]domain.SellerProfile, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sellers: %w", err)
	}
	defer rows.Close()

	sellers := []domain.SellerProfile{}
	for rows.Next() {
		s, err := scanSellerProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seller row: %w", err)
		}
		sellers = append(sellers, *s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating seller rows: %w", rows.Err())
	}
	return sellers, nil
}

func (r *PgxAccountRepository) ListSellers(ctx context.Context) ([]domain.SellerProfile, error) {
	return r.listSellers(ctx, sellerProfileSelect+`
	ORDER BY seller_id`)
}

func (r *PgxAccountRepository) ListPendingSellers(ctx context.Context) ([]domain.SellerProfile, error) {
	return r.listSellers(ctx, sellerProfileSelect+`
	WHERE approval_status = $1
	ORDER BY seller_id DESC`, string(domain.ApprovalPending))
}

func (r *PgxAccountRepository) CreateAccount(ctx context.Context, reg domain.Registration) (*domain.RegisteredAccount, error) {
	if (reg.Customer == nil) == (reg.Seller == nil) {
		return nil, apperrors.NewInternalServerError("registration must carry exactly one profile")
	}
	out := &domain.RegisteredAccount{Role: reg.Account.Role}

	err := r.withTx(ctx, func(tx pgx.Tx) error {
		a := reg.Account
		err := tx.QueryRow(ctx, `
			INSERT INTO accounts (username, password_hash, role, email, phone, business_permit_path)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING user_id`,
			a.Username, a.PasswordHash, string(a.Role), a.Email, a.Phone, a.BusinessPermitPath,
		).Scan(&out.UserID)
		if err != nil {
			return mapPgError(err, "insert account")
		}

		if c := reg.Customer; c != nil {
			_, err = tx.Exec(ctx, `
				INSERT INTO customers (user_id, first_name, last_name, phone, address, email, profile_pic)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				out.UserID, c.FirstName, c.LastName, c.Phone, c.Address, c.Email, c.ProfilePic)
			if err != nil {
				return mapPgError(err, "insert customer")
			}
			out.FirstName, out.LastName, out.Email = c.FirstName, c.LastName, c.Email
			return nil
		}

		s := reg.Seller
		_, err = tx.Exec(ctx, `
			INSERT INTO sellers (user_id, business_name, first_name, last_name, business_address,
			                     email, phone, paypal_number, business_permit_file)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			out.UserID, s.BusinessName, s.FirstName, s.LastName, s.BusinessAddress,
			s.Email, s.Phone, s.PaypalNumber, s.BusinessPermitFile)
		if err != nil {
			return mapPgError(err, "insert seller")
		}
		out.FirstName, out.LastName, out.Email = s.FirstName, s.LastName, s.Email
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PgxAccountRepository) DecideSellerApproval(ctx context.Context, userID int64, status domain.ApprovalStatus) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE sellers SET approval_status = $1
		WHERE user_id = $2 AND approval_status = $3`,
		string(status), userID, string(domain.ApprovalPending))
	if err != nil {
		return fmt.Errorf("failed to update seller approval: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Seller not found or already processed")
	}
	return nil
}
