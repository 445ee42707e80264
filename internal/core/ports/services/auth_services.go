package services

import (
	"context"

	"github.com/vinque/vinque_backend/internal/core/domain"
	"github.com/vinque/vinque_backend/internal/dto"
	"golang.org/x/oauth2"
)

// RegistrationSvcFacade runs the signup workflow.
type RegistrationSvcFacade interface {
	// Register validates the request, stores the permit (if any), and creates
	// the account and its profile atomically. A stored permit is removed
	// again when the account cannot be created.
	Register(ctx context.Context, req dto.SignupRequest, permit *domain.FileUpload) (*domain.RegisteredAccount, error)
}

// AuthSvcFacade authenticates local and federated logins.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*domain.AccountIdentity, string, error)
	Logout(ctx context.Context, req dto.LogoutRequest) error
	// GoogleSignIn verifies a Google ID token and either logs the matching
	// account in or returns the attributes needed to finish signup.
	GoogleSignIn(ctx context.Context, credential string) (*domain.FederatedLoginResult, string, error)
	// ExchangeGoogleCode trades an authorization code for an ID token and
	// continues as GoogleSignIn.
	ExchangeGoogleCode(ctx context.Context, code string) (*domain.FederatedLoginResult, string, error)
}

// OTPSvcFacade issues and verifies one-time codes.
type OTPSvcFacade interface {
	SendOTP(ctx context.Context, req dto.SendOTPRequest) error
	// VerifyOTP consumes a code and opens a session for its owner.
	VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (*domain.AccountIdentity, string, error)
}

// TokenSvcFacade signs and parses access tokens.
type TokenSvcFacade interface {
	Issue(identity *domain.AccountIdentity) (string, error)
	Parse(token string) (*domain.Principal, error)
}

// GoogleOAuthSvcFacade talks to Google's OAuth endpoints.
type GoogleOAuthSvcFacade interface {
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*domain.FederatedIdentity, error)
}
