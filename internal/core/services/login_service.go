package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/dto"
	"github.com/vinque/vinque_backend/internal/utils"
)

const (
	invalidCredentialsMessage = "Invalid username or password"
	pendingApprovalMessage    = "Your seller account is pending approval. Please wait for admin approval before logging in."
)

// loginService implements AuthSvcFacade.
type loginService struct {
	BaseService
	accounts portsrepo.AccountReader
	history  portsrepo.LoginHistoryRepositoryFacade
	sessions *sessionStarter
	google   portssvc.GoogleOAuthSvcFacade
	attempts portssvc.AttemptLimiter
}

// NewLoginService creates the local and federated login service.
func NewLoginService(
	accounts portsrepo.AccountReader,
	history portsrepo.LoginHistoryRepositoryFacade,
	tokens portssvc.TokenSvcFacade,
	google portssvc.GoogleOAuthSvcFacade,
	attempts portssvc.AttemptLimiter,
) portssvc.AuthSvcFacade {
	return &loginService{
		accounts: accounts,
		history:  history,
		sessions: newSessionStarter(history, tokens),
		google:   google,
		attempts: attempts,
	}
}

var _ portssvc.AuthSvcFacade = (*loginService)(nil)

func loginAttemptKey(username string) string {
	return "login:" + strings.ToLower(strings.TrimSpace(username))
}

func (s *loginService) Login(ctx context.Context, req dto.LoginRequest) (*domain.AccountIdentity, string, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, "", apperrors.NewValidationError("Username and password are required")
	}

	key := loginAttemptKey(username)
	if err := s.attempts.Hit(ctx, key); err != nil {
		s.LogWarn(ctx, "Login attempt rejected by limiter", slog.String("username", username))
		return nil, "", err
	}

	rec, err := s.accounts.FindLoginRecordByUsername(ctx, username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			utils.BurnPasswordCheck(req.Password)
			return nil, "", apperrors.NewUnauthorizedError(invalidCredentialsMessage)
		}
		s.LogError(ctx, err, "Failed to look up login", slog.String("username", username))
		return nil, "", err
	}

	if !rec.Account.HasLocalCredential() {
		utils.BurnPasswordCheck(req.Password)
		return nil, "", apperrors.NewUnauthorizedError(invalidCredentialsMessage)
	}
	if !utils.CheckPasswordHash(req.Password, *rec.Account.PasswordHash) {
		return nil, "", apperrors.NewUnauthorizedError(invalidCredentialsMessage)
	}
	if rec.SellerBlocked() {
		s.LogInfo(ctx, "Blocked login for unapproved seller", slog.Int64("user_id", rec.Account.UserID))
		return nil, "", apperrors.NewForbiddenError(pendingApprovalMessage)
	}

	identity, token, err := s.sessions.start(ctx, rec)
	if err != nil {
		return nil, "", err
	}
	if err := s.attempts.Reset(ctx, key); err != nil {
		s.LogError(ctx, err, "Failed to reset login attempts", slog.String("username", username))
	}
	return identity, token, nil
}

func (s *loginService) Logout(ctx context.Context, req dto.LogoutRequest) error {
	closed, err := s.history.RecordLogout(ctx, req.UserID, req.Role)
	if err != nil {
		s.LogError(ctx, err, "Failed to record logout", slog.Int64("user_id", req.UserID))
		return err
	}
	if !closed {
		s.LogDebug(ctx, "No open session to close", slog.Int64("user_id", req.UserID), slog.String("role", string(req.Role)))
	}
	return nil
}

func (s *loginService) GoogleSignIn(ctx context.Context, credential string) (*domain.FederatedLoginResult, string, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, "", apperrors.NewValidationError("Missing Google credential")
	}
	if strings.Count(credential, ".") != 2 {
		return nil, "", apperrors.NewValidationError("Invalid Google credential format")
	}

	claims, err := s.google.ValidateGoogleIDToken(ctx, credential)
	if err != nil {
		s.LogWarn(ctx, "Google credential rejected", slog.String("error", err.Error()))
		return nil, "", apperrors.Wrap(apperrors.NewUnauthorizedError("Invalid Google credential"), err)
	}
	return s.bridge(ctx, claims)
}

func (s *loginService) ExchangeGoogleCode(ctx context.Context, code string) (*domain.FederatedLoginResult, string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, "", apperrors.NewValidationError("Missing authorization code")
	}
	token, err := s.google.ExchangeCodeForToken(ctx, code)
	if err != nil {
		s.LogWarn(ctx, "Google code exchange failed", slog.String("error", err.Error()))
		return nil, "", apperrors.Wrap(apperrors.NewUnauthorizedError("Failed to exchange authorization code"), err)
	}
	idToken, _ := token.Extra("id_token").(string)
	if idToken == "" {
		return nil, "", apperrors.NewUnauthorizedError("Google did not return an ID token")
	}
	return s.GoogleSignIn(ctx, idToken)
}

// bridge logs in the account matching verified claims, or describes the
// prospect so the client can finish signup.
func (s *loginService) bridge(ctx context.Context, claims *domain.FederatedIdentity) (*domain.FederatedLoginResult, string, error) {
	email := strings.TrimSpace(claims.Email)
	if claims.Subject == "" || email == "" {
		return nil, "", apperrors.NewValidationError("Missing required Google OAuth data")
	}
	if !claims.EmailVerified {
		return nil, "", apperrors.NewUnauthorizedError("Google email address is not verified")
	}

	rec, err := s.accounts.FindLoginRecordByIdentifier(ctx, email, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.LogInfo(ctx, "New Google user", slog.String("email", utils.MaskEmail(email)))
			prospect := *claims
			prospect.Email = email
			return &domain.FederatedLoginResult{IsNewUser: true, RequiresOTP: true, Prospect: &prospect}, "", nil
		}
		s.LogError(ctx, err, "Failed to look up Google user", slog.String("email", utils.MaskEmail(email)))
		return nil, "", err
	}

	if rec.SellerBlocked() {
		s.LogInfo(ctx, "Blocked Google login for unapproved seller", slog.Int64("user_id", rec.Account.UserID))
		return nil, "", apperrors.NewForbiddenError(pendingApprovalMessage)
	}

	identity, token, err := s.sessions.start(ctx, rec)
	if err != nil {
		return nil, "", err
	}
	identity.Email = email
	return &domain.FederatedLoginResult{Identity: identity}, token, nil
}
