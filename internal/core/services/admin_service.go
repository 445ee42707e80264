package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
)

// adminService implements AdminSvcFacade.
type adminService struct {
	BaseService
	accounts  portsrepo.AccountRepositoryFacade
	history   portsrepo.LoginHistoryRepositoryFacade
	orders    portsrepo.OrderRepositoryFacade
	retention time.Duration
	now       func() time.Time
}

// NewAdminService creates the admin console service. Login history older than
// retention is purged on read.
func NewAdminService(accounts portsrepo.AccountRepositoryFacade, history portsrepo.LoginHistoryRepositoryFacade, orders portsrepo.OrderRepositoryFacade, retention time.Duration) portssvc.AdminSvcFacade {
	return &adminService{
		accounts:  accounts,
		history:   history,
		orders:    orders,
		retention: retention,
		now:       time.Now,
	}
}

var _ portssvc.AdminSvcFacade = (*adminService)(nil)

func (s *adminService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.ListAccounts(ctx)
}

func (s *adminService) ListSellers(ctx context.Context) ([]domain.SellerProfile, error) {
	return s.accounts.ListSellers(ctx)
}

func (s *adminService) ListPendingSellers(ctx context.Context) ([]domain.SellerProfile, error) {
	sellers, err := s.accounts.ListPendingSellers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve pending sellers")
		return nil, err
	}
	return sellers, nil
}

func (s *adminService) ApproveSeller(ctx context.Context, userID int64) error {
	return s.decide(ctx, userID, domain.ApprovalApproved)
}

func (s *adminService) RejectSeller(ctx context.Context, userID int64) error {
	return s.decide(ctx, userID, domain.ApprovalRejected)
}

func (s *adminService) decide(ctx context.Context, userID int64, status domain.ApprovalStatus) error {
	if err := s.accounts.DecideSellerApproval(ctx, userID, status); err != nil {
		return err
	}
	s.LogInfo(ctx, "Seller application decided", slog.Int64("user_id", userID), slog.String("status", string(status)))
	return nil
}

func (s *adminService) LoginHistory(ctx context.Context) ([]domain.LoginSession, error) {
	cutoff := s.now().UTC().Add(-s.retention)
	sessions, err := s.history.PurgeAndList(ctx, cutoff)
	if err != nil {
		s.LogError(ctx, err, "Failed to load login history")
		return nil, err
	}
	return sessions, nil
}

func (s *adminService) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	return s.orders.ListPurchases(ctx)
}
