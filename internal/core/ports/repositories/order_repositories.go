package repositories

import (
	"context"

	"github.com/vinque/vinque_backend/internal/core/domain"
)

// OrderRepositoryFacade persists captured orders.
type OrderRepositoryFacade interface {
	CreateOrder(ctx context.Context, order domain.Order) (int64, error)
	ListBuyerOrders(ctx context.Context, customerID int64) ([]domain.Order, error)
	ListSellerOrders(ctx context.Context, sellerID int64) ([]domain.SellerOrder, error)
	// UpdateOrderStatus changes the status of an order whose product belongs
	// to sellerID. Orders outside the seller's catalogue yield forbidden.
	UpdateOrderStatus(ctx context.Context, orderID, sellerID int64, status domain.OrderStatus) error
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
}
