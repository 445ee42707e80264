package repositories

import (
	"context"
	"time"

	"github.com/vinque/vinque_backend/internal/core/domain"
)

// AccountReader defines read operations for accounts and their role profiles.
type AccountReader interface {
	// FindLoginRecordByUsername resolves a local login by case-insensitive username.
	FindLoginRecordByUsername(ctx context.Context, username string) (*domain.LoginRecord, error)

	// FindLoginRecordByIdentifier matches an email or username, case-insensitively.
	FindLoginRecordByIdentifier(ctx context.Context, email, username string) (*domain.LoginRecord, error)

	// FindLoginRecordByUserID resolves the account behind a verified one-time code.
	FindLoginRecordByUserID(ctx context.Context, userID int64) (*domain.LoginRecord, error)

	// ListAccounts returns every account without credentials.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListSellers returns every seller profile.
	ListSellers(ctx context.Context) ([]domain.SellerProfile, error)

	// ListPendingSellers returns sellers awaiting approval, newest first.
	ListPendingSellers(ctx context.Context) ([]domain.SellerProfile, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	// CreateAccount inserts the account and exactly one profile in a single
	// transaction. Unique violations surface as conflict errors.
	CreateAccount(ctx context.Context, reg domain.Registration) (*domain.RegisteredAccount, error)

	// DecideSellerApproval moves a pending seller to the given status. Sellers
	// that are missing or no longer pending yield a not-found error.
	DecideSellerApproval(ctx context.Context, userID int64, status domain.ApprovalStatus) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// LoginHistoryRepositoryFacade records and reports login sessions.
type LoginHistoryRepositoryFacade interface {
	RecordLogin(ctx context.Context, session domain.LoginSession) (int64, error)
	// RecordLogout closes the most recent open session for the user and role.
	RecordLogout(ctx context.Context, userID int64, role domain.Role) (bool, error)
	// PurgeAndList deletes sessions older than cutoff, then lists the rest newest first.
	PurgeAndList(ctx context.Context, cutoff time.Time) ([]domain.LoginSession, error)
}
