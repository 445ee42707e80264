package handlers_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	"github.com/vinque/vinque_backend/internal/dto"
)

func (suite *HandlerTestSuite) TestVisitStore() {
	suite.analytics.On("RecordStoreVisit", mock.Anything, dto.VisitStoreRequest{CustomerID: 3, SellerID: 7}).Return(nil).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/visit-store", map[string]int64{"customer_id": 3, "seller_id": 7}), "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.analytics.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestVisitStore_MissingSeller() {
	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/visit-store", map[string]int64{"customer_id": 3}), "")

	suite.assertError(w, http.StatusBadRequest, "customer_id and seller_id are required.")
}

func (suite *HandlerTestSuite) TestTrackProductView() {
	suite.analytics.On("TrackProductView", mock.Anything, dto.TrackProductViewRequest{ProductID: 4}).Return(11, nil).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/track-product-view", map[string]int64{"product_id": 4}), "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.TrackProductViewResponse
	suite.decode(w, &resp)
	suite.Equal(11, resp.ViewCount)
}

func (suite *HandlerTestSuite) TestSellerStats() {
	stats := &domain.SellerStats{
		BusinessName:  "Relics",
		TotalProducts: 4,
		Trending:      "Ceramics",
		Categories:    []domain.CategoryCount{{Category: "Ceramics", Count: 3}},
	}
	stats.VisitsByMonth[2] = 5
	suite.analytics.On("SellerStats", mock.Anything, sellerPrincipal, int64(7)).Return(stats, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/seller-stats/7", nil), sellerToken)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DataResponse[dto.SellerStatsResponse]
	suite.decode(w, &resp)
	suite.Equal(4, resp.Data.TotalProducts)
	suite.Equal(5, resp.Data.VisitsByMonth[2])
	suite.Len(resp.Data.VisitsByMonth, domain.MonthsPerYear)
}

func (suite *HandlerTestSuite) TestSellerRevenue_Anonymous() {
	suite.analytics.On("SellerRevenue", mock.Anything, (*domain.Principal)(nil), int64(7)).
		Return(nil, apperrors.NewUnauthorizedError("Authentication required")).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/seller-revenue/7", nil), "")

	suite.assertError(w, http.StatusUnauthorized, "Authentication required")
}

func (suite *HandlerTestSuite) TestSellerRevenue() {
	revenue := &domain.SellerRevenue{
		BusinessName: "Relics",
		TotalRevenue: decimal.RequireFromString("2500.50"),
		TotalOrders:  2,
	}
	suite.analytics.On("SellerRevenue", mock.Anything, sellerPrincipal, int64(7)).Return(revenue, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/seller-revenue/7", nil), sellerToken)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DataResponse[dto.SellerRevenueResponse]
	suite.decode(w, &resp)
	suite.True(revenue.TotalRevenue.Equal(resp.Data.TotalRevenue))
	suite.Equal(2, resp.Data.TotalOrders)
}
