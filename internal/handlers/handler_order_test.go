package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	"github.com/vinque/vinque_backend/internal/dto"
)

func (suite *HandlerTestSuite) TestCreateOrder() {
	suite.orders.On("CreateOrder", mock.Anything, customerPrincipal,
		mock.MatchedBy(func(req dto.CreateOrderRequest) bool {
			return req.ProductID == 9 &&
				req.Price.Equal(decimal.RequireFromString("1500")) &&
				req.DownPayment.Equal(decimal.RequireFromString("500")) &&
				req.PaypalTransactionID != nil && *req.PaypalTransactionID == "PAY-1"
		}),
	).Return(int64(77), nil).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/orders", map[string]any{
		"user_id":               3,
		"product_id":            9,
		"product_name":          "Ming vase",
		"price":                 "1500.00",
		"down_payment":          500,
		"remaining_payment":     "1000.00",
		"paypal_transaction_id": "PAY-1",
	}), customerToken)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.CreateOrderResponse
	suite.decode(w, &resp)
	suite.Equal(int64(77), resp.OrderID)
}

func (suite *HandlerTestSuite) TestCreateOrder_MissingFields() {
	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/orders", map[string]any{"user_id": 3}), customerToken)

	suite.assertError(w, http.StatusBadRequest, "Missing required order fields.")
	suite.orders.AssertNotCalled(suite.T(), "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateOrder_DuplicateTransaction() {
	suite.orders.On("CreateOrder", mock.Anything, customerPrincipal, mock.Anything).
		Return(int64(0), apperrors.NewConflictError("This transaction has already been recorded.", nil)).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/orders", map[string]any{
		"user_id":      3,
		"product_id":   9,
		"product_name": "Ming vase",
	}), customerToken)

	suite.assertError(w, http.StatusConflict, "This transaction has already been recorded.")
}

func (suite *HandlerTestSuite) TestListBuyerOrders() {
	orderDate := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	suite.orders.On("ListBuyerOrders", mock.Anything, customerPrincipal, int64(3)).Return([]domain.Order{{
		OrderID:     77,
		UserID:      3,
		ProductID:   9,
		ProductName: "Ming vase",
		Price:       decimal.RequireFromString("1500"),
		Status:      domain.OrderPending,
		OrderDate:   orderDate,
	}}, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/orders/3", nil), customerToken)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.OrdersResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Orders, 1)
	suite.Equal(domain.OrderPending, resp.Orders[0].Status)
	suite.Nil(resp.Orders[0].Customer)
}

func (suite *HandlerTestSuite) TestListSellerOrders_Forbidden() {
	suite.orders.On("ListSellerOrders", mock.Anything, sellerPrincipal, int64(8)).
		Return(nil, apperrors.NewForbiddenError("Unauthorized to view these orders")).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/seller-orders/8", nil), sellerToken)

	suite.assertError(w, http.StatusForbidden, "Unauthorized to view these orders")
}

func (suite *HandlerTestSuite) TestUpdateOrderStatus() {
	req := dto.UpdateOrderStatusRequest{Status: domain.OrderComplete, SellerID: 7}
	suite.orders.On("UpdateOrderStatus", mock.Anything, sellerPrincipal, int64(77), req).Return(nil).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPut, "/api/orders/77/status", req), sellerToken)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.orders.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpdateOrderStatus_UnknownStatus() {
	w := suite.serve(suite.jsonRequest(http.MethodPut, "/api/orders/77/status", map[string]string{"status": "Shipped"}), sellerToken)

	suite.assertError(w, http.StatusBadRequest, "Status must be Pending or Complete.")
}
