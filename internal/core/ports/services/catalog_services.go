package services

import (
	"context"

	"github.com/vinque/vinque_backend/internal/core/domain"
	"github.com/vinque/vinque_backend/internal/dto"
)

// ProductImages are the optional image parts of a product form, by slot.
type ProductImages [domain.ImageSlots]*domain.FileUpload

// ProductReaderSvc defines read operations for products.
type ProductReaderSvc interface {
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)
	GetProductDetail(ctx context.Context, productID int64) (*domain.ProductDetail, error)
	ListProducts(ctx context.Context, q domain.ProductQuery) ([]domain.ProductCard, error)
	ListArchived(ctx context.Context, principal *domain.Principal, sellerID int64) ([]domain.ProductCard, error)
	ListCategories(ctx context.Context) ([]string, error)
	// Search matches names and categories, returning the customer's avatar when asked.
	Search(ctx context.Context, params dto.SearchParams) ([]domain.ProductCard, *string, error)
}

// ProductWriterSvc defines write operations for products.
type ProductWriterSvc interface {
	CreateProduct(ctx context.Context, principal *domain.Principal, form dto.ProductForm, images ProductImages) (int64, error)
	UpdateProduct(ctx context.Context, principal *domain.Principal, productID int64, form dto.ProductForm, images ProductImages) error
	DeleteProduct(ctx context.Context, principal *domain.Principal, productID int64) error
	SetArchived(ctx context.Context, principal *domain.Principal, productID, sellerID int64, archived bool) error
	RecordVisit(ctx context.Context, productID int64) error
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}

// OrderSvcFacade captures and reports orders.
type OrderSvcFacade interface {
	CreateOrder(ctx context.Context, principal *domain.Principal, req dto.CreateOrderRequest) (int64, error)
	ListBuyerOrders(ctx context.Context, principal *domain.Principal, customerID int64) ([]domain.Order, error)
	ListSellerOrders(ctx context.Context, principal *domain.Principal, sellerID int64) ([]domain.SellerOrder, error)
	UpdateOrderStatus(ctx context.Context, principal *domain.Principal, orderID int64, req dto.UpdateOrderStatusRequest) error
}
