package handlers_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/stretchr/testify/mock"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	"github.com/vinque/vinque_backend/internal/dto"
)

func (suite *HandlerTestSuite) TestCustomerProfile() {
	suite.profiles.On("GetCustomerProfile", mock.Anything, customerPrincipal, int64(3)).Return(&domain.CustomerProfile{
		CustomerID: 3,
		UserID:     20,
		Username:   "ada",
		FirstName:  "Ada",
		ProfilePic: strPtr("profiles/1-ada.png"),
	}, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/profile-info/3", nil), customerToken)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DataResponse[dto.CustomerProfileResponse]
	suite.decode(w, &resp)
	suite.Equal("ada", resp.Data.Username)
	suite.Require().NotNil(resp.Data.ProfilePic)
	suite.Equal("/uploads/profiles/1-ada.png", *resp.Data.ProfilePic)
}

func (suite *HandlerTestSuite) TestUpdateCustomerProfile_WithPicture() {
	form := dto.CustomerProfileForm{
		Username:  "ada",
		Phone:     "09171234567",
		Address:   "12 Analytical St",
		Email:     "ada@example.com",
		AboutInfo: "Collector",
	}
	suite.profiles.On("UpdateCustomerProfile", mock.Anything, customerPrincipal, int64(3), form,
		mock.MatchedBy(func(f *domain.FileUpload) bool { return f != nil && f.Filename == "me.png" }),
	).Return(strPtr("profiles/1700000000000000000-me.png"), nil).Once()

	w := suite.serve(suite.multipartRequest(http.MethodPut, "/api/profile-update/3", map[string]string{
		"username":   "ada",
		"phone_num":  "09171234567",
		"Address":    "12 Analytical St",
		"email":      "ada@example.com",
		"about_info": "Collector",
	}, formFile{field: "profile_image", name: "me.png", content: []byte("\x89PNG\r\n\x1a\n")}), customerToken)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ProfileUpdateResponse
	suite.decode(w, &resp)
	suite.True(resp.Success)
	suite.Require().NotNil(resp.ProfilePic)
	suite.Equal("/uploads/profiles/1700000000000000000-me.png", *resp.ProfilePic)
}

func (suite *HandlerTestSuite) TestUpdateCustomerProfile_Duplicate() {
	suite.profiles.On("UpdateCustomerProfile", mock.Anything, customerPrincipal, int64(3), mock.Anything, (*domain.FileUpload)(nil)).
		Return(nil, apperrors.NewConflictError("Email or phone number already exists.", nil)).Once()

	w := suite.serve(suite.multipartRequest(http.MethodPut, "/api/profile-update/3", map[string]string{"username": "ada"}), customerToken)

	suite.assertError(w, http.StatusConflict, "Email or phone number already exists.")
}

func (suite *HandlerTestSuite) TestStore() {
	suite.profiles.On("GetStore", mock.Anything, int64(7)).Return(&domain.Store{
		SellerID:      7,
		BusinessName:  "Relics",
		TotalProducts: 1,
		Products:      []domain.ProductCard{{ProductID: 1, Name: "Ming vase"}},
	}, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/store/7", nil), "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.StoreResponse
	suite.decode(w, &resp)
	suite.Equal("Relics", resp.Store.BusinessName)
	suite.Len(resp.Products, 1)
}

func (suite *HandlerTestSuite) TestSellerProfile() {
	suite.profiles.On("GetSellerProfile", mock.Anything, int64(7)).Return(&domain.SellerProfile{
		SellerID:       7,
		BusinessName:   "Relics",
		ApprovalStatus: domain.ApprovalApproved,
	}, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/seller/7", nil), "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DataResponse[dto.SellerResponse]
	suite.decode(w, &resp)
	suite.Equal(int64(7), resp.Data.SellerID)
}

func (suite *HandlerTestSuite) TestUpdateSellerProfile_ExternalURL() {
	form := dto.SellerProfileForm{
		BusinessName:    "Relics",
		BusinessAddress: "1 Market Rd",
		Phone:           "09170000000",
		ProfilePicURL:   "https://cdn.example.com/shop.png",
	}
	suite.profiles.On("UpdateSellerProfile", mock.Anything, sellerPrincipal, int64(7), form, (*domain.FileUpload)(nil)).
		Return(strPtr("https://cdn.example.com/shop.png"), nil).Once()

	w := suite.serve(suite.multipartRequest(http.MethodPut, "/api/seller/update/7", map[string]string{
		"business_name":    "Relics",
		"business_address": "1 Market Rd",
		"phone_num":        "09170000000",
		"profile_pic_url":  "https://cdn.example.com/shop.png",
	}), sellerToken)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ProfileUpdateResponse
	suite.decode(w, &resp)
	suite.Require().NotNil(resp.SellerImage)
	suite.Equal("https://cdn.example.com/shop.png", *resp.SellerImage)
	suite.Nil(resp.ProfilePic)
}
