package repositories

import (
	"context"

	"github.com/vinque/vinque_backend/internal/core/domain"
)

// ProductReader defines read operations for products.
type ProductReader interface {
	FindProductByID(ctx context.Context, productID int64) (*domain.Product, error)
	FindProductDetail(ctx context.Context, productID int64) (*domain.ProductDetail, error)
	ListProducts(ctx context.Context, q domain.ProductQuery) ([]domain.ProductCard, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// ProductWriter defines write operations for products. Methods that drop
// image references enqueue the obsolete object keys for cleanup inside the
// same transaction and return them.
type ProductWriter interface {
	CreateProduct(ctx context.Context, draft domain.ProductDraft, images [domain.ImageSlots]*string) (int64, error)
	UpdateProduct(ctx context.Context, productID int64, update domain.ProductUpdate) ([]string, error)
	DeleteProduct(ctx context.Context, productID int64, sellerID int64) ([]string, error)
	SetArchived(ctx context.Context, productID int64, sellerID int64, archived bool) error
	IncrementVisits(ctx context.Context, productID int64) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
