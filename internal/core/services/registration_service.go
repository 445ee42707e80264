package services

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/dto"
	"github.com/vinque/vinque_backend/internal/platform/upload"
	"github.com/vinque/vinque_backend/internal/utils"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// registrationService implements RegistrationSvcFacade.
type registrationService struct {
	BaseService
	accounts       portsrepo.AccountWriter
	google         portssvc.GoogleOAuthSvcFacade
	files          *fileKeeper
	maxPermitBytes int64
}

// NewRegistrationService creates the signup workflow.
func NewRegistrationService(accounts portsrepo.AccountWriter, google portssvc.GoogleOAuthSvcFacade, files *fileKeeper, maxPermitBytes int64) portssvc.RegistrationSvcFacade {
	return &registrationService{
		accounts:       accounts,
		google:         google,
		files:          files,
		maxPermitBytes: maxPermitBytes,
	}
}

var _ portssvc.RegistrationSvcFacade = (*registrationService)(nil)

// signupFields is a trimmed copy of the request. The password is kept as
// typed; only its emptiness and length are judged on the trimmed value.
type signupFields struct {
	username, password, email, firstName, lastName, phone, address, paypal string
	role                                                                   domain.Role
}

func trimSignup(req dto.SignupRequest) signupFields {
	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = string(domain.RoleCustomer)
	}
	return signupFields{
		username:  strings.TrimSpace(req.Username),
		password:  req.Password,
		email:     strings.TrimSpace(req.Email),
		firstName: strings.TrimSpace(req.FirstName),
		lastName:  strings.TrimSpace(req.LastName),
		phone:     strings.TrimSpace(req.Phone),
		address:   strings.TrimSpace(req.Address),
		paypal:    strings.TrimSpace(req.Paypal),
		role:      domain.Role(role),
	}
}

// validateSignup checks every rule that does not need I/O.
func validateSignup(f signupFields, fromGoogle bool, permit *domain.FileUpload) error {
	trimmedPassword := strings.TrimSpace(f.password)
	if f.username == "" || (trimmedPassword == "" && !fromGoogle) || f.email == "" ||
		f.firstName == "" || f.lastName == "" || f.phone == "" || f.address == "" {
		return apperrors.NewValidationError("All required fields must be filled.")
	}
	if !fromGoogle && len(trimmedPassword) < utils.MinPasswordLength {
		return apperrors.NewValidationError("Password must be at least 8 characters.")
	}
	if !f.role.CanSelfRegister() {
		return apperrors.NewValidationError("Invalid role.")
	}
	if !emailPattern.MatchString(f.email) {
		return apperrors.NewValidationError("Invalid email format.")
	}
	if f.role == domain.RoleSeller && permit == nil {
		return apperrors.NewValidationError("Business permit file is required for sellers.")
	}
	return nil
}

func (s *registrationService) Register(ctx context.Context, req dto.SignupRequest, permit *domain.FileUpload) (*domain.RegisteredAccount, error) {
	f := trimSignup(req)
	if err := validateSignup(f, req.FromGoogle, permit); err != nil {
		return nil, err
	}

	var inspected *upload.Inspected
	if f.role == domain.RoleSeller {
		var err error
		if inspected, err = upload.Inspect(*permit, upload.PermitPolicy(s.maxPermitBytes)); err != nil {
			return nil, err
		}
	}

	var federated *domain.FederatedIdentity
	if req.FromGoogle {
		var err error
		if federated, err = s.verifyFederated(ctx, req.Credential, f.email); err != nil {
			return nil, err
		}
	}

	reg := domain.Registration{
		Account: domain.Account{
			Username: f.username,
			Role:     f.role,
			Email:    &f.email,
			Phone:    &f.phone,
		},
	}
	if !req.FromGoogle {
		hash, err := utils.HashPassword(f.password)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash password")
			return nil, err
		}
		reg.Account.PasswordHash = &hash
	}

	batch := s.files.begin()
	defer batch.Release(ctx)

	switch f.role {
	case domain.RoleSeller:
		key, err := batch.Put(ctx, PermitDir, inspected)
		if err != nil {
			s.LogError(ctx, err, "Failed to store business permit")
			return nil, apperrors.NewUpstreamError("Failed to store business permit", err)
		}
		reg.Account.BusinessPermitPath = &key
		var paypal *string
		if f.paypal != "" {
			paypal = &f.paypal
		}
		reg.Seller = &domain.SellerProfile{
			BusinessName:       f.username,
			FirstName:          f.firstName,
			LastName:           f.lastName,
			BusinessAddress:    f.address,
			Email:              f.email,
			Phone:              f.phone,
			PaypalNumber:       paypal,
			BusinessPermitFile: &key,
			ApprovalStatus:     domain.ApprovalPending,
		}
	default:
		customer := &domain.CustomerProfile{
			FirstName: f.firstName,
			LastName:  f.lastName,
			Phone:     f.phone,
			Address:   f.address,
			Email:     f.email,
		}
		if federated != nil && federated.Picture != "" {
			picture := federated.Picture
			customer.ProfilePic = &picture
		}
		reg.Customer = customer
	}

	created, err := s.accounts.CreateAccount(ctx, reg)
	if err != nil {
		s.LogError(ctx, err, "Failed to create account",
			slog.String("username", f.username),
			slog.String("email", utils.MaskEmail(f.email)),
			slog.String("role", string(f.role)))
		return nil, err
	}
	batch.Commit()

	s.LogInfo(ctx, "Account registered",
		slog.Int64("user_id", created.UserID),
		slog.String("role", string(created.Role)),
		slog.Bool("federated", req.FromGoogle))
	return created, nil
}

// verifyFederated checks that a federated signup carries a valid credential
// for the submitted email.
func (s *registrationService) verifyFederated(ctx context.Context, credential, email string) (*domain.FederatedIdentity, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, apperrors.NewValidationError("Missing Google credential")
	}
	claims, err := s.google.ValidateGoogleIDToken(ctx, credential)
	if err != nil {
		s.LogWarn(ctx, "Google credential rejected at signup", slog.String("error", err.Error()))
		return nil, apperrors.Wrap(apperrors.NewUnauthorizedError("Invalid Google credential"), err)
	}
	if !claims.EmailVerified || !strings.EqualFold(strings.TrimSpace(claims.Email), email) {
		return nil, apperrors.NewUnauthorizedError("Google account does not match the submitted email")
	}
	return claims, nil
}
