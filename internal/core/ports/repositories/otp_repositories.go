package repositories

import (
	"context"
	"time"

	"github.com/vinque/vinque_backend/internal/core/domain"
)

// OTPRepositoryFacade persists one-time codes.
type OTPRepositoryFacade interface {
	// IssueCode replaces the user's unverified codes with code and calls
	// deliver before committing. A deliver error rolls the transaction back.
	IssueCode(ctx context.Context, code domain.OTPCode, deliver func(ctx context.Context) error) error

	// ConsumeCode marks a matching, unverified, unexpired code as verified and
	// removes the user's other codes. Unknown or expired codes yield not found.
	ConsumeCode(ctx context.Context, userID int64, code string, now time.Time) (*domain.OTPCode, error)
}
