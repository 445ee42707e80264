package handlers_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/dto"
)

func (suite *HandlerTestSuite) TestListProducts_NormalisesImagePaths() {
	cards := []domain.ProductCard{{
		ProductID: 1,
		Name:      "Ming vase",
		Price:     decimal.RequireFromString("1500.00"),
		Images:    [domain.ImageSlots]*string{strPtr("uploads/products/1-vase.png"), nil, nil},
		Category:  "Ceramics",
	}}
	suite.products.On("ListProducts", mock.Anything, domain.ProductQuery{}).Return(cards, nil).Times(3)

	for _, path := range []string{"/api/products", "/api/card-item-all", "/api/home-products"} {
		w := suite.serve(httptest.NewRequest(http.MethodGet, path, nil), "")

		suite.Equal(http.StatusOK, w.Code, path)
		var resp dto.DataResponse[[]dto.ProductCardResponse]
		suite.decode(w, &resp)
		suite.Require().Len(resp.Data, 1)
		suite.Require().NotNil(resp.Data[0].Image1Path)
		suite.Equal("/uploads/products/1-vase.png", *resp.Data[0].Image1Path)
		suite.Nil(resp.Data[0].Image2Path)
		suite.True(decimal.RequireFromString("1500").Equal(resp.Data[0].Price))
	}
	suite.products.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListSellerProducts() {
	sellerID := int64(7)
	suite.products.On("ListProducts", mock.Anything, domain.ProductQuery{SellerID: &sellerID}).
		Return([]domain.ProductCard{}, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/card-item/7", nil), "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"success","data":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestProductDetail_InvalidID() {
	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/item-detail/abc", nil), "")

	suite.assertError(w, http.StatusBadRequest, "Invalid product ID")
	suite.products.AssertNotCalled(suite.T(), "GetProductDetail", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestProductDetail_NotFound() {
	suite.products.On("GetProductDetail", mock.Anything, int64(404)).
		Return(nil, apperrors.NewNotFoundError("Product not found")).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/item-detail/404", nil), "")

	suite.assertError(w, http.StatusNotFound, "Product not found")
}

func (suite *HandlerTestSuite) TestCategoryNav_EmptyIsArray() {
	suite.products.On("ListCategories", mock.Anything).Return(nil, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/category-nav", nil), "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"success","data":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestSearch_PassesQueryAndAvatar() {
	suite.products.On("Search", mock.Anything, dto.SearchParams{Q: "vase", Seller: int64Ptr(7), CustomerID: int64Ptr(3)}).
		Return([]domain.ProductCard{}, strPtr("https://lh3.googleusercontent.com/a/pic"), nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/header/search?q=vase&seller=7&customerId=3", nil), "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.SearchResponse
	suite.decode(w, &resp)
	suite.Require().NotNil(resp.ProfilePic)
	suite.Equal("https://lh3.googleusercontent.com/a/pic", *resp.ProfilePic)
	suite.products.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestSearch_IgnoresMalformedFilters() {
	suite.products.On("Search", mock.Anything, dto.SearchParams{Q: "clock"}).
		Return([]domain.ProductCard{}, nil, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/header/search?q=clock&seller=x&customerId=-1", nil), "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.products.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateProduct_Multipart() {
	fields := map[string]string{
		"seller_id":    "7",
		"product_name": "Ming vase",
		"price":        "1500.00",
		"description":  "Blue and white",
		"category":     "Ceramics",
		"verified":     "no",
	}
	image := formFile{field: "image1", name: "vase.png", content: []byte("\x89PNG\r\n\x1a\n")}
	suite.products.On("CreateProduct", mock.Anything, sellerPrincipal,
		mock.MatchedBy(func(f dto.ProductForm) bool {
			return f.SellerID == 7 && f.ProductName == "Ming vase" && f.Price == "1500.00" && f.Verified == "no"
		}),
		mock.MatchedBy(func(images portssvc.ProductImages) bool {
			return images[0] != nil && images[0].Filename == "vase.png" && images[1] == nil && images[2] == nil
		}),
	).Return(int64(42), nil).Times(2)

	for _, path := range []string{"/api/add-item", "/api/products"} {
		w := suite.serve(suite.multipartRequest(http.MethodPost, path, fields, image), sellerToken)

		suite.Equal(http.StatusCreated, w.Code, w.Body.String())
		var resp dto.CreateProductResponse
		suite.decode(w, &resp)
		suite.Equal(int64(42), resp.ItemID)
	}
	suite.products.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateProduct_AnonymousIsUnauthorized() {
	suite.products.On("CreateProduct", mock.Anything, (*domain.Principal)(nil), mock.Anything, mock.Anything).
		Return(int64(0), apperrors.NewUnauthorizedError("Authentication required")).Once()

	w := suite.serve(suite.multipartRequest(http.MethodPost, "/api/products", map[string]string{"seller_id": "7"}), "")

	suite.assertError(w, http.StatusUnauthorized, "Authentication required")
}

func (suite *HandlerTestSuite) TestUpdateProduct_ImageAction() {
	suite.products.On("UpdateProduct", mock.Anything, sellerPrincipal, int64(5),
		mock.MatchedBy(func(f dto.ProductForm) bool {
			return f.ImageActions() == [domain.ImageSlots]string{"", "delete", ""}
		}),
		portssvc.ProductImages{},
	).Return(nil).Once()

	w := suite.serve(suite.multipartRequest(http.MethodPut, "/api/edit-item/5", map[string]string{
		"seller_id":     "7",
		"product_name":  "Ming vase",
		"image2_action": "delete",
	}), sellerToken)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.products.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDeleteProduct_BothRoutes() {
	suite.products.On("DeleteProduct", mock.Anything, sellerPrincipal, int64(5)).Return(nil).Once()
	suite.products.On("DeleteProduct", mock.Anything, sellerPrincipal, int64(6)).
		Return(apperrors.NewForbiddenError("Unauthorized to delete this product")).Once()

	w := suite.serve(httptest.NewRequest(http.MethodDelete, "/api/delete-item/5", nil), sellerToken)
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.serve(httptest.NewRequest(http.MethodDelete, "/api/edit-item/6", nil), sellerToken)
	suite.assertError(w, http.StatusForbidden, "Unauthorized to delete this product")
}

func (suite *HandlerTestSuite) TestArchive_WithoutBodyUsesToken() {
	suite.products.On("SetArchived", mock.Anything, sellerPrincipal, int64(5), int64(0), true).Return(nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodPut, "/api/products/5/archive", nil), sellerToken)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.products.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRestore_WithSellerBody() {
	suite.products.On("SetArchived", mock.Anything, adminPrincipal, int64(5), int64(7), false).Return(nil).Once()

	w := suite.serve(suite.jsonRequest(http.MethodPut, "/api/products/5/restore", map[string]int64{"sellerId": 7}), adminToken)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.products.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListArchived() {
	suite.products.On("ListArchived", mock.Anything, sellerPrincipal, int64(7)).
		Return([]domain.ProductCard{{ProductID: 9, Name: "Clock", Archived: true}}, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/seller/7/archived-products", nil), sellerToken)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DataResponse[[]dto.ProductCardResponse]
	suite.decode(w, &resp)
	suite.Require().Len(resp.Data, 1)
	suite.True(resp.Data[0].Archived)
}

func (suite *HandlerTestSuite) TestRecordVisit() {
	suite.products.On("RecordVisit", mock.Anything, int64(3)).Return(nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodPut, "/api/visit/3", nil), "")

	suite.Equal(http.StatusOK, w.Code)
	suite.products.AssertExpectations(suite.T())
}
