package services

import (
	"context"
	"log/slog"

	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	"github.com/vinque/vinque_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

const authRequiredMessage = "Authentication required"

// AuthorizeSeller allows admins and the seller identified by sellerID.
func (s *BaseService) AuthorizeSeller(ctx context.Context, principal *domain.Principal, sellerID int64, deniedMsg string) error {
	if principal == nil {
		return apperrors.NewUnauthorizedError(authRequiredMessage)
	}
	if principal.Role == domain.RoleAdmin || principal.OwnsSeller(sellerID) {
		return nil
	}
	s.LogWarn(ctx, "Seller authorization denied",
		slog.Int64("user_id", principal.UserID),
		slog.Int64("seller_id", sellerID))
	return apperrors.NewForbiddenError(deniedMsg)
}

// AuthorizeCustomer allows admins and the customer identified by customerID.
func (s *BaseService) AuthorizeCustomer(ctx context.Context, principal *domain.Principal, customerID int64, deniedMsg string) error {
	if principal == nil {
		return apperrors.NewUnauthorizedError(authRequiredMessage)
	}
	if principal.Role == domain.RoleAdmin || principal.OwnsCustomer(customerID) {
		return nil
	}
	s.LogWarn(ctx, "Customer authorization denied",
		slog.Int64("user_id", principal.UserID),
		slog.Int64("customer_id", customerID))
	return apperrors.NewForbiddenError(deniedMsg)
}

// actingSellerID resolves the seller a request acts for: the explicit id when
// given, otherwise the caller's own seller id.
func actingSellerID(principal *domain.Principal, requested int64) int64 {
	if requested > 0 {
		return requested
	}
	if principal != nil && principal.SellerID != nil {
		return *principal.SellerID
	}
	return 0
}
