package repositories

import (
	"context"

	"github.com/vinque/vinque_backend/internal/core/domain"
)

// ProfileRepositoryFacade reads and edits customer and seller profiles.
// Update methods return the replaced local object key (if any) after it has
// been enqueued for cleanup.
type ProfileRepositoryFacade interface {
	FindCustomerProfile(ctx context.Context, customerID int64) (*domain.CustomerProfile, error)
	UpdateCustomerProfile(ctx context.Context, customerID int64, update domain.CustomerProfileUpdate) (*string, error)
	FindSellerProfile(ctx context.Context, sellerID int64) (*domain.SellerProfile, error)
	FindStore(ctx context.Context, sellerID int64) (*domain.Store, error)
	UpdateSellerProfile(ctx context.Context, sellerID int64, update domain.SellerProfileUpdate) (*string, error)
	FindCustomerPicture(ctx context.Context, customerID int64) (*string, error)
}
