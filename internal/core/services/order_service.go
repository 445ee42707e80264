package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/dto"
)

// orderService implements OrderSvcFacade.
type orderService struct {
	BaseService
	orders portsrepo.OrderRepositoryFacade
}

// NewOrderService creates the order capture service.
func NewOrderService(orders portsrepo.OrderRepositoryFacade) portssvc.OrderSvcFacade {
	return &orderService{orders: orders}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

func validateOrder(req dto.CreateOrderRequest) error {
	if req.UserID <= 0 || req.ProductID <= 0 || strings.TrimSpace(req.ProductName) == "" {
		return apperrors.NewValidationError("Missing required fields")
	}
	if !req.Price.IsPositive() {
		return apperrors.NewValidationError("Price must be greater than zero.")
	}
	if req.Price.GreaterThanOrEqual(maxMoney) {
		return apperrors.NewValidationError("Price is too large.")
	}
	if req.DownPayment.IsNegative() || req.RemainingPayment.IsNegative() {
		return apperrors.NewValidationError("Payments cannot be negative.")
	}
	if req.DownPayment.GreaterThan(req.Price) {
		return apperrors.NewValidationError("Down payment cannot exceed the price.")
	}
	return nil
}

func optionalTrimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

func (s *orderService) CreateOrder(ctx context.Context, principal *domain.Principal, req dto.CreateOrderRequest) (int64, error) {
	if err := validateOrder(req); err != nil {
		return 0, err
	}
	if err := s.AuthorizeCustomer(ctx, principal, req.UserID, "Orders can only be placed for your own account"); err != nil {
		return 0, err
	}

	order := domain.Order{
		UserID:              req.UserID,
		ProductID:           req.ProductID,
		ProductName:         strings.TrimSpace(req.ProductName),
		Price:               req.Price.Round(2),
		DownPayment:         req.DownPayment.Round(2),
		RemainingPayment:    req.RemainingPayment.Round(2),
		Status:              domain.OrderPending,
		PaypalTransactionID: optionalTrimmed(req.PaypalTransactionID),
		PayerName:           optionalTrimmed(req.PayerName),
	}
	id, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		s.LogError(ctx, err, "Failed to save order",
			slog.Int64("customer_id", req.UserID),
			slog.Int64("product_id", req.ProductID))
		return 0, err
	}
	s.LogInfo(ctx, "Order saved",
		slog.Int64("order_id", id),
		slog.Int64("product_id", req.ProductID),
		slog.String("price", order.Price.StringFixed(2)))
	return id, nil
}

func (s *orderService) ListBuyerOrders(ctx context.Context, principal *domain.Principal, customerID int64) ([]domain.Order, error) {
	if err := s.AuthorizeCustomer(ctx, principal, customerID, "Unauthorized to view these orders"); err != nil {
		return nil, err
	}
	return s.orders.ListBuyerOrders(ctx, customerID)
}

func (s *orderService) ListSellerOrders(ctx context.Context, principal *domain.Principal, sellerID int64) ([]domain.SellerOrder, error) {
	if err := s.AuthorizeSeller(ctx, principal, sellerID, "Unauthorized to view these orders"); err != nil {
		return nil, err
	}
	return s.orders.ListSellerOrders(ctx, sellerID)
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, principal *domain.Principal, orderID int64, req dto.UpdateOrderStatusRequest) error {
	if !req.Status.IsValid() {
		return apperrors.NewValidationError("Invalid status. Must be 'Pending' or 'Complete'")
	}
	sellerID := actingSellerID(principal, req.SellerID)
	if principal != nil && sellerID == 0 {
		return apperrors.NewValidationError("Status and seller ID are required")
	}
	if err := s.AuthorizeSeller(ctx, principal, sellerID, "Order not found or you don't have permission to update this order"); err != nil {
		return err
	}
	if err := s.orders.UpdateOrderStatus(ctx, orderID, sellerID, req.Status); err != nil {
		return err
	}
	s.LogInfo(ctx, "Order status updated", slog.Int64("order_id", orderID), slog.String("status", string(req.Status)))
	return nil
}
