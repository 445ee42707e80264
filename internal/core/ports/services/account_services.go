package services

import (
	"context"

	"github.com/vinque/vinque_backend/internal/core/domain"
	"github.com/vinque/vinque_backend/internal/dto"
)

// AdminSvcFacade serves the admin console.
type AdminSvcFacade interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ListSellers(ctx context.Context) ([]domain.SellerProfile, error)
	ListPendingSellers(ctx context.Context) ([]domain.SellerProfile, error)
	ApproveSeller(ctx context.Context, userID int64) error
	RejectSeller(ctx context.Context, userID int64) error
	// LoginHistory purges sessions past retention and lists the rest.
	LoginHistory(ctx context.Context) ([]domain.LoginSession, error)
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
}

// ProfileSvcFacade reads and edits customer and seller profiles.
type ProfileSvcFacade interface {
	GetCustomerProfile(ctx context.Context, principal *domain.Principal, customerID int64) (*domain.CustomerProfile, error)
	UpdateCustomerProfile(ctx context.Context, principal *domain.Principal, customerID int64, form dto.CustomerProfileForm, picture *domain.FileUpload) (*string, error)
	GetStore(ctx context.Context, sellerID int64) (*domain.Store, error)
	GetSellerProfile(ctx context.Context, sellerID int64) (*domain.SellerProfile, error)
	UpdateSellerProfile(ctx context.Context, principal *domain.Principal, sellerID int64, form dto.SellerProfileForm, picture *domain.FileUpload) (*string, error)
}

// AnalyticsSvcFacade records engagement and builds seller dashboards.
type AnalyticsSvcFacade interface {
	RecordStoreVisit(ctx context.Context, req dto.VisitStoreRequest) error
	TrackProductView(ctx context.Context, req dto.TrackProductViewRequest) (int, error)
	SellerStats(ctx context.Context, principal *domain.Principal, sellerID int64) (*domain.SellerStats, error)
	SellerRevenue(ctx context.Context, principal *domain.Principal, sellerID int64) (*domain.SellerRevenue, error)
}
