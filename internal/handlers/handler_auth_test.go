package handlers_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/stretchr/testify/mock"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	"github.com/vinque/vinque_backend/internal/dto"
)

func (suite *HandlerTestSuite) TestSignup_JSONCustomer() {
	body := dto.SignupRequest{
		Username:  "ada",
		Password:  "correct-horse",
		Email:     "ada@example.com",
		Role:      "Customer",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     "09171234567",
		Address:   "12 Analytical St",
	}
	suite.registration.On("Register", mock.Anything, body, (*domain.FileUpload)(nil)).
		Return(&domain.RegisteredAccount{UserID: 5, Role: domain.RoleCustomer, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, nil).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/signup", body), "")

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.SignupResponse
	suite.decode(w, &resp)
	suite.Equal("success", resp.Status)
	suite.Equal(int64(5), resp.User.UserID)
	suite.Equal("Ada", resp.User.FirstName)
	suite.registration.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestSignup_MultipartSellerPassesPermit() {
	fields := map[string]string{
		"username":   "relics",
		"password":   "correct-horse",
		"email":      "shop@example.com",
		"role":       "Seller",
		"first_name": "Grace",
		"last_name":  "Hopper",
		"phone":      "09170000000",
		"address":    "1 Market Rd",
	}
	permit := formFile{field: "businessPermit", name: "permit.pdf", content: []byte("%PDF-1.4")}
	suite.registration.On("Register", mock.Anything,
		mock.MatchedBy(func(req dto.SignupRequest) bool {
			return req.Role == "Seller" && req.Username == "relics" && req.FirstName == "Grace"
		}),
		mock.MatchedBy(func(f *domain.FileUpload) bool {
			return f != nil && f.Filename == "permit.pdf" && f.Size == int64(len("%PDF-1.4"))
		}),
	).Return(&domain.RegisteredAccount{UserID: 6, Role: domain.RoleSeller, FirstName: "Grace", LastName: "Hopper", Email: "shop@example.com"}, nil).Once()

	w := suite.serve(suite.multipartRequest(http.MethodPost, "/api/signup", fields, permit), "")

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.registration.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestSignup_ConflictIsRendered() {
	suite.registration.On("Register", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewConflictError("Email or phone number already exists.", nil)).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/signup", dto.SignupRequest{Username: "dup"}), "")

	suite.assertError(w, http.StatusConflict, "Email or phone number already exists.")
}

func (suite *HandlerTestSuite) TestLogin_Success() {
	identity := &domain.AccountIdentity{
		UserID:    10,
		Username:  "relics",
		Role:      domain.RoleSeller,
		FirstName: "Grace",
		LastName:  "Hopper",
		SellerID:  int64Ptr(7),
		HistoryID: 99,
	}
	suite.auth.On("Login", mock.Anything, dto.LoginRequest{Username: "relics", Password: "correct-horse"}).
		Return(identity, "jwt-token", nil).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/login", map[string]string{
		"username": "relics",
		"password": "correct-horse",
	}), "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	suite.decode(w, &resp)
	suite.Equal("jwt-token", resp.Token)
	suite.Equal(int64(99), resp.User.HistoryID)
	suite.Require().NotNil(resp.User.SellerID)
	suite.Equal(int64(7), *resp.User.SellerID)
	suite.Nil(resp.User.CustomerID)
	suite.Nil(resp.IsNewUser)
}

func (suite *HandlerTestSuite) TestLogin_MissingPassword() {
	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/login", map[string]string{"username": "relics"}), "")

	suite.assertError(w, http.StatusBadRequest, "Username and password are required.")
	suite.auth.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestLogin_BlankUsername() {
	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/login", map[string]string{
		"username": "   ",
		"password": "correct-horse",
	}), "")

	suite.assertError(w, http.StatusBadRequest, "Username and password are required.")
	suite.auth.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestLogin_PendingSeller() {
	suite.auth.On("Login", mock.Anything, mock.Anything).
		Return(nil, "", apperrors.NewForbiddenError("Your seller account is pending approval.")).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/login", map[string]string{
		"username": "relics",
		"password": "correct-horse",
	}), "")

	suite.assertError(w, http.StatusForbidden, "Your seller account is pending approval.")
}

func (suite *HandlerTestSuite) TestLogout() {
	suite.auth.On("Logout", mock.Anything, dto.LogoutRequest{UserID: 10, Role: domain.RoleSeller}).Return(nil).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/logout", map[string]any{"user_id": 10, "role": "Seller"}), "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.auth.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestLogout_TokenOwnerWinsOverBody() {
	suite.auth.On("Logout", mock.Anything, dto.LogoutRequest{UserID: 10, Role: domain.RoleSeller}).Return(nil).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/logout", map[string]any{"user_id": 99, "role": "Admin"}), sellerToken)

	suite.Equal(http.StatusOK, w.Code)
	suite.auth.AssertNotCalled(suite.T(), "Logout", mock.Anything, dto.LogoutRequest{UserID: 99, Role: domain.RoleAdmin})
}

func (suite *HandlerTestSuite) TestLogout_TokenWithoutBody() {
	suite.auth.On("Logout", mock.Anything, dto.LogoutRequest{UserID: 20, Role: domain.RoleCustomer}).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	w := suite.serve(req, customerToken)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestLogout_UnknownRole() {
	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/logout", map[string]any{"user_id": 10, "role": "Root"}), "")

	suite.assertError(w, http.StatusBadRequest, "user_id and role are required.")
}

func (suite *HandlerTestSuite) TestGoogleSignup_NewUser() {
	suite.auth.On("GoogleSignIn", mock.Anything, "a.b.c").Return(&domain.FederatedLoginResult{
		IsNewUser:   true,
		RequiresOTP: true,
		Prospect: &domain.FederatedIdentity{
			Subject: "google-123",
			Email:   "ada@example.com",
			Name:    "Ada King Lovelace",
		},
	}, "", nil).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/google-signup", map[string]string{"credential": "a.b.c"}), "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ProspectResponse
	suite.decode(w, &resp)
	suite.True(resp.IsNewUser)
	suite.True(resp.RequiresOTP)
	suite.Equal("Ada", resp.User.FirstName)
	suite.Equal("King Lovelace", resp.User.LastName)
	suite.Equal("google-123", resp.User.GoogleID)
	suite.Nil(resp.User.Picture)
}

func (suite *HandlerTestSuite) TestGoogleSignup_ExistingUser() {
	suite.auth.On("GoogleSignIn", mock.Anything, "a.b.c").Return(&domain.FederatedLoginResult{
		Identity: &domain.AccountIdentity{UserID: 20, Username: "ada", Role: domain.RoleCustomer, CustomerID: int64Ptr(3)},
	}, "jwt-token", nil).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/google-signup", map[string]string{"credential": "a.b.c"}), "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	suite.decode(w, &resp)
	suite.Equal("jwt-token", resp.Token)
	suite.Require().NotNil(resp.IsNewUser)
	suite.False(*resp.IsNewUser)
	suite.Require().NotNil(resp.RequiresOTP)
	suite.False(*resp.RequiresOTP)
}

func (suite *HandlerTestSuite) TestExchangeGoogleCode_Failure() {
	suite.auth.On("ExchangeGoogleCode", mock.Anything, "bad-code").
		Return(nil, "", apperrors.NewUnauthorizedError("Google authentication failed")).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/google/exchange-code", map[string]string{"code": "bad-code"}), "")

	suite.assertError(w, http.StatusUnauthorized, "Google authentication failed")
}

func (suite *HandlerTestSuite) TestSendOTP_MailerFailureIsGeneric500() {
	suite.otp.On("SendOTP", mock.Anything, dto.SendOTPRequest{UserID: 5, Email: "ada@example.com"}).
		Return(apperrors.NewUpstreamError("Failed to send OTP email", nil)).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/send-otp", map[string]any{"user_id": 5, "email": "ada@example.com"}), "")

	suite.assertError(w, http.StatusInternalServerError, "Failed to send OTP email")
}

func (suite *HandlerTestSuite) TestSendOTP_InvalidEmail() {
	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/send-otp", map[string]any{"user_id": 5, "email": "nope"}), "")

	suite.assertError(w, http.StatusBadRequest, "A valid user_id and email are required.")
	suite.otp.AssertNotCalled(suite.T(), "SendOTP", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestVerifyOTP() {
	identity := &domain.AccountIdentity{UserID: 5, Role: domain.RoleCustomer, CustomerID: int64Ptr(2), HistoryID: 41}
	suite.otp.On("VerifyOTP", mock.Anything, dto.VerifyOTPRequest{UserID: 5, OTPCode: "123456"}).
		Return(identity, "session-token", nil).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/verify-otp", map[string]any{"user_id": 5, "otp_code": "123456"}), "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.VerifyOTPResponse
	suite.decode(w, &resp)
	suite.Equal("session-token", resp.Token)
	suite.Equal(int64(41), resp.User.HistoryID)
}

func (suite *HandlerTestSuite) TestVerifyOTP_LocalAccountRefused() {
	suite.otp.On("VerifyOTP", mock.Anything, mock.Anything).
		Return(nil, "", apperrors.NewForbiddenError("One-time codes are only available for Google sign-in accounts.")).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/verify-otp", map[string]any{"user_id": 1, "otp_code": "123456"}), "")

	suite.assertError(w, http.StatusForbidden, "One-time codes are only available for Google sign-in accounts.")
	suite.NotContains(w.Body.String(), "token")
}

func (suite *HandlerTestSuite) TestVerifyOTP_RateLimited() {
	suite.otp.On("VerifyOTP", mock.Anything, mock.Anything).
		Return(nil, "", apperrors.NewTooManyRequestsError("Too many attempts. Please try again later.")).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPost, "/api/verify-otp", map[string]any{"user_id": 5, "otp_code": "000000"}), "")

	suite.assertError(w, http.StatusTooManyRequests, "Too many attempts. Please try again later.")
}
