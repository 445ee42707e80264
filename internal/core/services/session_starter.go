package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
)

// sessionStarter opens a login session for an authenticated account.
type sessionStarter struct {
	BaseService
	history portsrepo.LoginHistoryRepositoryFacade
	tokens  portssvc.TokenSvcFacade
	now     func() time.Time
}

func newSessionStarter(history portsrepo.LoginHistoryRepositoryFacade, tokens portssvc.TokenSvcFacade) *sessionStarter {
	return &sessionStarter{history: history, tokens: tokens, now: time.Now}
}

// start records a login history row and signs the session token.
func (s *sessionStarter) start(ctx context.Context, rec *domain.LoginRecord) (*domain.AccountIdentity, string, error) {
	first, last := rec.DisplayName()
	historyID, err := s.history.RecordLogin(ctx, domain.LoginSession{
		UserID:    rec.Account.UserID,
		Role:      rec.Account.Role,
		FirstName: first,
		LastName:  last,
		LoginAt:   s.now().UTC(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record login", slog.Int64("user_id", rec.Account.UserID))
		return nil, "", err
	}

	identity := &domain.AccountIdentity{
		UserID:     rec.Account.UserID,
		Username:   rec.Account.Username,
		Role:       rec.Account.Role,
		FirstName:  first,
		LastName:   last,
		SellerID:   rec.SellerID,
		CustomerID: rec.CustomerID,
		HistoryID:  historyID,
	}
	if rec.Account.Email != nil {
		identity.Email = *rec.Account.Email
	}

	token, err := s.tokens.Issue(identity)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue session token", slog.Int64("user_id", rec.Account.UserID))
		return nil, "", err
	}
	s.LogInfo(ctx, "User logged in", slog.Int64("user_id", identity.UserID), slog.String("role", string(identity.Role)))
	return identity, token, nil
}
