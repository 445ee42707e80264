package services

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/dto"
	"github.com/vinque/vinque_backend/internal/utils"
)

const (
	invalidOTPMessage       = "Invalid or expired OTP"
	otpNotAllowedMessage    = "One-time codes are only available for Google sign-in accounts."
	otpEmailMismatchMessage = "Email does not match this account."
)

// otpService implements OTPSvcFacade.
type otpService struct {
	BaseService
	codes    portsrepo.OTPRepositoryFacade
	accounts portsrepo.AccountReader
	mailer   portssvc.Mailer
	sessions *sessionStarter
	attempts portssvc.AttemptLimiter
	ttl      time.Duration
	now      func() time.Time
	generate func(digits int) (string, error)
}

// NewOTPService creates the one-time code service. Codes expire after ttl.
func NewOTPService(
	codes portsrepo.OTPRepositoryFacade,
	accounts portsrepo.AccountReader,
	history portsrepo.LoginHistoryRepositoryFacade,
	mailer portssvc.Mailer,
	tokens portssvc.TokenSvcFacade,
	attempts portssvc.AttemptLimiter,
	ttl time.Duration,
) portssvc.OTPSvcFacade {
	return &otpService{
		codes:    codes,
		accounts: accounts,
		mailer:   mailer,
		sessions: newSessionStarter(history, tokens),
		attempts: attempts,
		ttl:      ttl,
		now:      time.Now,
		generate: utils.GenerateNumericCode,
	}
}

var _ portssvc.OTPSvcFacade = (*otpService)(nil)

// otpAccount loads the account a code is for and checks it may use one.
func (s *otpService) otpAccount(ctx context.Context, userID int64) (*domain.LoginRecord, error) {
	rec, err := s.accounts.FindLoginRecordByUserID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		s.LogError(ctx, err, "Failed to load OTP account", slog.Int64("user_id", userID))
		return nil, err
	}
	if !rec.AcceptsOTP() {
		s.LogWarn(ctx, "OTP refused for account with local credentials",
			slog.Int64("user_id", userID), slog.String("role", string(rec.Account.Role)))
		return nil, apperrors.NewForbiddenError(otpNotAllowedMessage)
	}
	return rec, nil
}

func (s *otpService) SendOTP(ctx context.Context, req dto.SendOTPRequest) error {
	email := strings.TrimSpace(req.Email)
	if req.UserID <= 0 || email == "" {
		return apperrors.NewValidationError("Missing user_id or email")
	}

	rec, err := s.otpAccount(ctx, req.UserID)
	if err != nil {
		return err
	}
	if !rec.OwnsEmail(email) {
		s.LogWarn(ctx, "OTP requested for an address not on the account",
			slog.Int64("user_id", req.UserID), slog.String("email", utils.MaskEmail(email)))
		return apperrors.NewValidationError(otpEmailMismatchMessage)
	}
	to := strings.TrimSpace(*rec.Account.Email)

	code, err := s.generate(domain.OTPCodeLength)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate OTP")
		return err
	}

	otp := domain.OTPCode{
		UserID:    req.UserID,
		Email:     to,
		Code:      code,
		ExpiresAt: s.now().UTC().Add(s.ttl),
	}
	err = s.codes.IssueCode(ctx, otp, func(ctx context.Context) error {
		if err := s.mailer.SendOTP(ctx, to, rec.FirstName, code, s.ttl); err != nil {
			return apperrors.NewUpstreamError("Failed to send OTP email", err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to issue OTP",
			slog.Int64("user_id", req.UserID),
			slog.String("email", utils.MaskEmail(to)))
		return err
	}

	s.LogInfo(ctx, "OTP issued", slog.Int64("user_id", req.UserID), slog.String("email", utils.MaskEmail(to)))
	return nil
}

func (s *otpService) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (*domain.AccountIdentity, string, error) {
	code := strings.TrimSpace(req.OTPCode)
	if req.UserID <= 0 || code == "" {
		return nil, "", apperrors.NewValidationError("Missing user_id or otp_code")
	}

	key := "otp:" + strconv.FormatInt(req.UserID, 10)
	if err := s.attempts.Hit(ctx, key); err != nil {
		s.LogWarn(ctx, "OTP attempt rejected by limiter", slog.Int64("user_id", req.UserID))
		return nil, "", err
	}

	if len(code) != domain.OTPCodeLength {
		return nil, "", apperrors.NewValidationError(invalidOTPMessage)
	}

	rec, err := s.otpAccount(ctx, req.UserID)
	if err != nil {
		return nil, "", err
	}

	consumed, err := s.codes.ConsumeCode(ctx, req.UserID, code, s.now().UTC())
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, "", apperrors.NewValidationError(invalidOTPMessage)
		}
		s.LogError(ctx, err, "Failed to verify OTP", slog.Int64("user_id", req.UserID))
		return nil, "", err
	}
	if !rec.OwnsEmail(consumed.Email) {
		s.LogWarn(ctx, "OTP was issued to an address not on the account", slog.Int64("user_id", req.UserID))
		return nil, "", apperrors.NewValidationError(invalidOTPMessage)
	}
	if err := s.attempts.Reset(ctx, key); err != nil {
		s.LogError(ctx, err, "Failed to reset OTP attempts", slog.Int64("user_id", req.UserID))
	}

	if rec.SellerBlocked() {
		return nil, "", apperrors.NewForbiddenError(pendingApprovalMessage)
	}

	identity, token, err := s.sessions.start(ctx, rec)
	if err != nil {
		return nil, "", err
	}
	s.LogInfo(ctx, "OTP verified", slog.Int64("user_id", req.UserID))
	return identity, token, nil
}
