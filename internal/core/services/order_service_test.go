package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/core/services"
	"github.com/vinque/vinque_backend/internal/dto"
)

type OrderServiceTestSuite struct {
	suite.Suite
	orders  *MockOrderRepository
	service portssvc.OrderSvcFacade
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.orders = new(MockOrderRepository)
	suite.service = services.NewOrderService(suite.orders)
}

func (suite *OrderServiceTestSuite) TearDownTest() {
	suite.orders.AssertExpectations(suite.T())
}

func orderRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		UserID:           2,
		ProductID:        31,
		ProductName:      " Ming Vase ",
		Price:            decimal.RequireFromString("1000.005"),
		DownPayment:      decimal.RequireFromString("500"),
		RemainingPayment: decimal.RequireFromString("500.005"),
		PayerName:        strPtr("  "),
	}
}

func (suite *OrderServiceTestSuite) TestCreateOrder_Success() {
	suite.orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o domain.Order) bool {
		return o.UserID == 2 && o.ProductName == "Ming Vase" &&
			o.Price.Equal(decimal.RequireFromString("1000.01")) &&
			o.Status == domain.OrderPending && o.PayerName == nil
	})).Return(int64(90), nil).Once()

	id, err := suite.service.CreateOrder(context.Background(), customerPrincipal(2), orderRequest())
	suite.Require().NoError(err)
	suite.Equal(int64(90), id)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_Validation() {
	cases := []struct {
		name    string
		mutate  func(*dto.CreateOrderRequest)
		message string
	}{
		{"missing product", func(r *dto.CreateOrderRequest) { r.ProductID = 0 }, "Missing required fields"},
		{"zero price", func(r *dto.CreateOrderRequest) { r.Price = decimal.Zero }, "Price must be greater than zero."},
		{"huge price", func(r *dto.CreateOrderRequest) { r.Price = decimal.New(1, 9) }, "Price is too large."},
		{"negative payment", func(r *dto.CreateOrderRequest) { r.RemainingPayment = decimal.NewFromInt(-1) }, "Payments cannot be negative."},
		{"down payment over price", func(r *dto.CreateOrderRequest) { r.DownPayment = decimal.NewFromInt(2000) }, "Down payment cannot exceed the price."},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			req := orderRequest()
			tc.mutate(&req)
			_, err := suite.service.CreateOrder(context.Background(), customerPrincipal(2), req)
			requireAppError(suite.T(), err, http.StatusBadRequest, tc.message)
		})
	}
}

func (suite *OrderServiceTestSuite) TestCreateOrder_ForOtherCustomer() {
	_, err := suite.service.CreateOrder(context.Background(), customerPrincipal(3), orderRequest())
	requireAppError(suite.T(), err, http.StatusForbidden, "Orders can only be placed for your own account")
}

func (suite *OrderServiceTestSuite) TestListSellerOrders() {
	orders := []domain.SellerOrder{{Order: domain.Order{OrderID: 1}}}
	suite.orders.On("ListSellerOrders", mock.Anything, int64(4)).Return(orders, nil).Once()

	got, err := suite.service.ListSellerOrders(context.Background(), sellerPrincipal(4), 4)
	suite.Require().NoError(err)
	suite.Len(got, 1)

	_, err = suite.service.ListSellerOrders(context.Background(), sellerPrincipal(4), 5)
	requireAppError(suite.T(), err, http.StatusForbidden, "")
}

func (suite *OrderServiceTestSuite) TestListBuyerOrders_Unauthenticated() {
	_, err := suite.service.ListBuyerOrders(context.Background(), nil, 2)
	requireAppError(suite.T(), err, http.StatusUnauthorized, "Authentication required")
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus() {
	suite.orders.On("UpdateOrderStatus", mock.Anything, int64(90), int64(4), domain.OrderComplete).Return(nil).Once()
	err := suite.service.UpdateOrderStatus(context.Background(), sellerPrincipal(4), 90, dto.UpdateOrderStatusRequest{Status: domain.OrderComplete})
	suite.Require().NoError(err)
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_NotSellersOrder() {
	denied := apperrors.NewForbiddenError("Order not found or you don't have permission to update this order")
	suite.orders.On("UpdateOrderStatus", mock.Anything, int64(91), int64(4), domain.OrderPending).Return(denied).Once()

	err := suite.service.UpdateOrderStatus(context.Background(), sellerPrincipal(4), 91, dto.UpdateOrderStatusRequest{Status: domain.OrderPending})
	requireAppError(suite.T(), err, http.StatusForbidden, "Order not found or you don't have permission to update this order")
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_InvalidStatus() {
	err := suite.service.UpdateOrderStatus(context.Background(), sellerPrincipal(4), 90, dto.UpdateOrderStatusRequest{Status: "Shipped"})
	requireAppError(suite.T(), err, http.StatusBadRequest, "Invalid status. Must be 'Pending' or 'Complete'")
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
