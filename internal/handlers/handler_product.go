package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/dto"
	"github.com/vinque/vinque_backend/internal/middleware"
)

// productHandler handles HTTP requests related to products.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// registerProductRoutes registers the catalog and listing-management routes.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	rg.GET("/products", h.listProducts)
	rg.POST("/products", h.createProduct)
	rg.POST("/add-item", h.createProduct)
	rg.GET("/card-item-all", h.listProducts)
	rg.GET("/card-item/:sellerId", h.listSellerProducts)
	rg.GET("/home-products", h.listProducts)
	rg.GET("/item-detail/:id", h.getProductDetail)
	rg.GET("/checkout/:id", h.getCheckout)
	rg.GET("/category-nav", h.listCategories)
	rg.GET("/header/search", h.search)

	rg.GET("/edit-item/:id", h.getProduct)
	rg.PUT("/edit-item/:id", h.updateProduct)
	rg.DELETE("/edit-item/:id", h.deleteProduct)
	rg.DELETE("/delete-item/:id", h.deleteProduct)

	rg.PUT("/products/:productId/archive", h.archiveProduct)
	rg.PUT("/products/:productId/restore", h.restoreProduct)
	rg.GET("/seller/:sellerId/archived-products", h.listArchived)
	rg.PUT("/visit/:id", h.recordVisit)
}

// readProductImages collects the image1..image3 parts of a product form.
func readProductImages(c *gin.Context, files *uploadedFiles) (portssvc.ProductImages, error) {
	var images portssvc.ProductImages
	for i := range images {
		img, err := files.get(c, fmt.Sprintf("image%d", i+1))
		if err != nil {
			return images, err
		}
		images[i] = img
	}
	return images, nil
}

// listProducts godoc
// @Summary List active products
// @Description Lists every non-archived product as a card. Also served as /card-item-all and /home-products.
// @Tags products
// @Produce json
// @Success 200 {object} dto.DataResponse[[]dto.ProductCardResponse]
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	cards, err := h.productService.ListProducts(c.Request.Context(), domain.ProductQuery{})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WithData(dto.ToProductCardResponses(cards)))
}

// listSellerProducts godoc
// @Summary List a seller's active products
// @Tags products
// @Produce json
// @Param sellerId path int true "Seller ID"
// @Success 200 {object} dto.DataResponse[[]dto.ProductCardResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /card-item/{sellerId} [get]
func (h *productHandler) listSellerProducts(c *gin.Context) {
	sellerID, ok := idParam(c, "sellerId", "Invalid seller ID")
	if !ok {
		return
	}
	cards, err := h.productService.ListProducts(c.Request.Context(), domain.ProductQuery{SellerID: &sellerID})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WithData(dto.ToProductCardResponses(cards)))
}

// getProductDetail godoc
// @Summary Get a product with its store
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.DataResponse[dto.ProductResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /item-detail/{id} [get]
func (h *productHandler) getProductDetail(c *gin.Context) {
	productID, ok := idParam(c, "id", "Invalid product ID")
	if !ok {
		return
	}
	detail, err := h.productService.GetProductDetail(c.Request.Context(), productID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WithData(dto.ToProductDetailResponse(detail)))
}

// getCheckout godoc
// @Summary Get the checkout summary of a product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.DataResponse[dto.CheckoutResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /checkout/{id} [get]
func (h *productHandler) getCheckout(c *gin.Context) {
	productID, ok := idParam(c, "id", "Invalid product ID")
	if !ok {
		return
	}
	product, err := h.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WithData(dto.ToCheckoutResponse(product)))
}

// listCategories godoc
// @Summary List categories with active products
// @Tags products
// @Produce json
// @Success 200 {object} dto.DataResponse[[]string]
// @Router /category-nav [get]
func (h *productHandler) listCategories(c *gin.Context) {
	categories, err := h.productService.ListCategories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, dto.WithData(categories))
}

// search godoc
// @Summary Search products by name or category
// @Tags products
// @Produce json
// @Param q query string false "Search term"
// @Param seller query int false "Restrict to a seller"
// @Param customerId query int false "Return this customer's avatar"
// @Success 200 {object} dto.SearchResponse
// @Router /header/search [get]
func (h *productHandler) search(c *gin.Context) {
	params := dto.SearchParams{
		Q:          c.Query("q"),
		Seller:     optionalInt64Query(c, "seller"),
		CustomerID: optionalInt64Query(c, "customerId"),
	}
	cards, pic, err := h.productService.Search(c.Request.Context(), params)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SearchResponse{
		Status:     "success",
		Data:       dto.ToProductCardResponses(cards),
		ProfilePic: pic,
	})
}

// createProduct godoc
// @Summary Create a product listing
// @Description Multipart form; image1 is required, image2 and image3 are optional.
// @Tags products
// @Accept mpfd
// @Produce json
// @Param seller_id formData int true "Seller ID"
// @Param product_name formData string true "Name"
// @Param price formData string true "Price"
// @Param description formData string true "Description"
// @Param category formData string true "Category"
// @Param verified formData string true "yes or no"
// @Param image1 formData file true "Primary image"
// @Success 201 {object} dto.CreateProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /add-item [post]
func (h *productHandler) createProduct(c *gin.Context) {
	var form dto.ProductForm
	if !bindForm(c, &form, "Invalid product form.") {
		return
	}
	files := &uploadedFiles{}
	defer files.close()
	images, err := readProductImages(c, files)
	if err != nil {
		fail(c, err)
		return
	}

	id, err := h.productService.CreateProduct(c.Request.Context(), middleware.GetPrincipal(c), form, images)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateProductResponse{
		Status:  "success",
		Message: "Item added successfully",
		ItemID:  id,
	})
}

// getProduct godoc
// @Summary Get a product for editing
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.DataResponse[dto.ProductResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /edit-item/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	productID, ok := idParam(c, "id", "Invalid product ID")
	if !ok {
		return
	}
	product, err := h.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WithData(dto.ToProductResponse(product)))
}

// updateProduct godoc
// @Summary Edit a product listing
// @Description Multipart form. Each image slot takes a new file or imageN_action=delete.
// @Tags products
// @Accept mpfd
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /edit-item/{id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	productID, ok := idParam(c, "id", "Invalid product ID")
	if !ok {
		return
	}
	var form dto.ProductForm
	if !bindForm(c, &form, "Invalid product form.") {
		return
	}
	files := &uploadedFiles{}
	defer files.close()
	images, err := readProductImages(c, files)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.productService.UpdateProduct(c.Request.Context(), middleware.GetPrincipal(c), productID, form, images); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Item updated successfully"))
}

// deleteProduct godoc
// @Summary Delete a product listing
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /delete-item/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	productID, ok := idParam(c, "id", "Invalid product ID")
	if !ok {
		return
	}
	if err := h.productService.DeleteProduct(c.Request.Context(), middleware.GetPrincipal(c), productID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Item deleted successfully"))
}

// archiveProduct godoc
// @Summary Archive a product
// @Tags products
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param body body dto.ArchiveRequest false "Owning seller"
// @Success 200 {object} dto.StatusResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{productId}/archive [put]
func (h *productHandler) archiveProduct(c *gin.Context) {
	h.setArchived(c, true, "Product archived successfully")
}

// restoreProduct godoc
// @Summary Restore an archived product
// @Tags products
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param body body dto.ArchiveRequest false "Owning seller"
// @Success 200 {object} dto.StatusResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{productId}/restore [put]
func (h *productHandler) restoreProduct(c *gin.Context) {
	h.setArchived(c, false, "Product restored successfully")
}

func (h *productHandler) setArchived(c *gin.Context, archived bool, message string) {
	productID, ok := idParam(c, "productId", "Invalid product ID")
	if !ok {
		return
	}
	var req dto.ArchiveRequest
	// The body is optional; sellers may rely on their token instead.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		fail(c, apperrors.Wrap(apperrors.NewValidationError("Invalid request body."), err))
		return
	}
	if err := h.productService.SetArchived(c.Request.Context(), middleware.GetPrincipal(c), productID, req.SellerID, archived); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(message))
}

// listArchived godoc
// @Summary List a seller's archived products
// @Tags products
// @Produce json
// @Param sellerId path int true "Seller ID"
// @Success 200 {object} dto.DataResponse[[]dto.ProductCardResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /seller/{sellerId}/archived-products [get]
func (h *productHandler) listArchived(c *gin.Context) {
	sellerID, ok := idParam(c, "sellerId", "Invalid seller ID")
	if !ok {
		return
	}
	cards, err := h.productService.ListArchived(c.Request.Context(), middleware.GetPrincipal(c), sellerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WithData(dto.ToProductCardResponses(cards)))
}

// recordVisit godoc
// @Summary Count a product page visit
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /visit/{id} [put]
func (h *productHandler) recordVisit(c *gin.Context) {
	productID, ok := idParam(c, "id", "Invalid product ID")
	if !ok {
		return
	}
	if err := h.productService.RecordVisit(c.Request.Context(), productID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Visit recorded"))
}
