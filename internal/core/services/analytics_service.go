package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/dto"
)

// analyticsService implements AnalyticsSvcFacade.
type analyticsService struct {
	BaseService
	analytics portsrepo.AnalyticsRepositoryFacade
	now       func() time.Time
}

// NewAnalyticsService creates the engagement and dashboard service.
func NewAnalyticsService(analytics portsrepo.AnalyticsRepositoryFacade) portssvc.AnalyticsSvcFacade {
	return &analyticsService{analytics: analytics, now: time.Now}
}

var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

func (s *analyticsService) RecordStoreVisit(ctx context.Context, req dto.VisitStoreRequest) error {
	customerID := req.CustomerID
	if err := s.analytics.RecordStoreVisit(ctx, req.SellerID, &customerID); err != nil {
		s.LogError(ctx, err, "Failed to record visit", slog.Int64("seller_id", req.SellerID))
		return err
	}
	return nil
}

func (s *analyticsService) TrackProductView(ctx context.Context, req dto.TrackProductViewRequest) (int, error) {
	customerID := req.CustomerID
	if customerID != nil && *customerID <= 0 {
		customerID = nil
	}
	count, err := s.analytics.TrackProductView(ctx, req.ProductID, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to track product view", slog.Int64("product_id", req.ProductID))
		return 0, err
	}
	return count, nil
}

func (s *analyticsService) SellerStats(ctx context.Context, principal *domain.Principal, sellerID int64) (*domain.SellerStats, error) {
	if err := s.AuthorizeSeller(ctx, principal, sellerID, "Unauthorized to view these statistics"); err != nil {
		return nil, err
	}
	return s.analytics.SellerStats(ctx, sellerID, s.now().Year())
}

func (s *analyticsService) SellerRevenue(ctx context.Context, principal *domain.Principal, sellerID int64) (*domain.SellerRevenue, error) {
	if err := s.AuthorizeSeller(ctx, principal, sellerID, "Unauthorized to view this revenue"); err != nil {
		return nil, err
	}
	return s.analytics.SellerRevenue(ctx, sellerID, s.now().Year())
}
