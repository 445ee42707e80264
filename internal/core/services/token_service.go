package services

import (
	"fmt"

	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/platform/config"
	"github.com/vinque/vinque_backend/internal/utils"
)

// tokenService implements the TokenSvcFacade for signing and parsing session tokens.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) Issue(identity *domain.AccountIdentity) (string, error) {
	token, err := utils.GenerateJWT(identity.UserID, string(identity.Role), identity.SellerID, identity.CustomerID,
		s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token for user %d: %w", identity.UserID, err)
	}
	return token, nil
}

func (s *tokenService) Parse(token string) (*domain.Principal, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret, s.cfg.JWTIssuer)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.NewUnauthorizedError("Invalid or expired token"), err)
	}
	role := domain.Role(claims.Role)
	if !role.IsValid() {
		return nil, apperrors.NewUnauthorizedError("Invalid or expired token")
	}
	userID, _ := claims.UserID()
	return &domain.Principal{
		UserID:     userID,
		Role:       role,
		SellerID:   claims.SellerID,
		CustomerID: claims.CustomerID,
	}, nil
}
