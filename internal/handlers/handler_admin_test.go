package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	"github.com/vinque/vinque_backend/internal/dto"
)

func (suite *HandlerTestSuite) TestAdminRoutes_RequireAdmin() {
	routes := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/admin/pending-sellers"},
		{http.MethodPut, "/api/admin/approve-seller/12"},
		{http.MethodPut, "/api/admin/reject-seller/12"},
		{http.MethodGet, "/api/admin/purchases"},
		{http.MethodGet, "/api/A_History"},
		{http.MethodGet, "/api/accounts"},
		{http.MethodGet, "/api/seller"},
	}
	for _, r := range routes {
		w := suite.serve(httptest.NewRequest(r.method, r.path, nil), "")
		suite.assertError(w, http.StatusUnauthorized, "Authentication required")

		w = suite.serve(httptest.NewRequest(r.method, r.path, nil), sellerToken)
		suite.assertError(w, http.StatusForbidden, "You do not have permission to perform this action")
	}
	suite.Empty(suite.admin.Calls)
}

func (suite *HandlerTestSuite) TestApproveSeller() {
	suite.admin.On("ApproveSeller", mock.Anything, int64(12)).Return(nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodPut, "/api/admin/approve-seller/12", nil), adminToken)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.admin.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRejectSeller_AlreadyProcessed() {
	suite.admin.On("RejectSeller", mock.Anything, int64(12)).
		Return(apperrors.NewNotFoundError("Seller not found or already processed")).Once()

	w := suite.serve(httptest.NewRequest(http.MethodPut, "/api/admin/reject-seller/12", nil), adminToken)

	suite.assertError(w, http.StatusNotFound, "Seller not found or already processed")
}

func (suite *HandlerTestSuite) TestPendingSellers() {
	suite.admin.On("ListPendingSellers", mock.Anything).Return([]domain.SellerProfile{{
		SellerID:       7,
		UserID:         10,
		BusinessName:   "Relics",
		ApprovalStatus: domain.ApprovalPending,
	}}, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/admin/pending-sellers", nil), adminToken)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DataResponse[[]dto.SellerResponse]
	suite.decode(w, &resp)
	suite.Require().Len(resp.Data, 1)
	suite.Equal(domain.ApprovalPending, resp.Data[0].ApprovalStatus)
}

func (suite *HandlerTestSuite) TestLoginHistory_FormatsTimestamps() {
	login := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	suite.admin.On("LoginHistory", mock.Anything).Return([]domain.LoginSession{{
		UserID:    10,
		Role:      domain.RoleSeller,
		FirstName: "Grace",
		LastName:  "Hopper",
		LoginAt:   login,
	}}, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/A_History", nil), adminToken)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DataResponse[[]dto.LoginHistoryResponse]
	suite.decode(w, &resp)
	suite.Require().Len(resp.Data, 1)
	suite.Equal("2024-05-06 07:08:09", resp.Data[0].Login)
	suite.Nil(resp.Data[0].Logout)
}

func (suite *HandlerTestSuite) TestListAccounts_OmitsHashes() {
	suite.admin.On("ListAccounts", mock.Anything).Return([]domain.Account{{
		UserID:       1,
		Username:     "admin",
		Role:         domain.RoleAdmin,
		PasswordHash: strPtr("$2a$10$secret"),
	}}, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/accounts", nil), adminToken)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.NotContains(w.Body.String(), "secret")
}
