package repositories

import (
	"context"

	"github.com/vinque/vinque_backend/internal/core/domain"
)

// AnalyticsRepositoryFacade records engagement and aggregates seller dashboards.
type AnalyticsRepositoryFacade interface {
	RecordStoreVisit(ctx context.Context, sellerID int64, customerID *int64) error
	// TrackProductView records a view (once per known customer) and returns
	// the product's total view count.
	TrackProductView(ctx context.Context, productID int64, customerID *int64) (int, error)
	SellerStats(ctx context.Context, sellerID int64, year int) (*domain.SellerStats, error)
	SellerRevenue(ctx context.Context, sellerID int64, year int) (*domain.SellerRevenue, error)
}
