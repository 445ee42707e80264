package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/dto"
	"github.com/vinque/vinque_backend/internal/middleware"
	"github.com/vinque/vinque_backend/internal/utils"
)

// profileHandler serves customer profiles and seller storefronts.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// registerProfileRoutes registers profile and storefront routes.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	rg.GET("/profile-info/:id", h.getCustomerProfile)
	rg.PUT("/profile-update/:id", h.updateCustomerProfile)
	rg.GET("/store/:id", h.getStore)
	rg.GET("/seller/:sellerId", h.getSellerProfile)
	rg.PUT("/seller/update/:id", h.updateSellerProfile)
}

// getCustomerProfile godoc
// @Summary Get a customer's profile
// @Tags profiles
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} dto.DataResponse[dto.CustomerProfileResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /profile-info/{id} [get]
func (h *profileHandler) getCustomerProfile(c *gin.Context) {
	customerID, ok := idParam(c, "id", "Invalid customer ID")
	if !ok {
		return
	}
	profile, err := h.profileService.GetCustomerProfile(c.Request.Context(), middleware.GetPrincipal(c), customerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WithData(dto.ToCustomerProfileResponse(profile)))
}

// updateCustomerProfile godoc
// @Summary Update a customer's profile
// @Description Multipart form; profile_image replaces the current picture.
// @Tags profiles
// @Accept mpfd
// @Produce json
// @Param id path int true "Customer ID"
// @Param username formData string true "Username"
// @Param phone_num formData string true "Phone"
// @Param Address formData string true "Address"
// @Param email formData string true "Email"
// @Param about_info formData string false "About"
// @Param profile_image formData file false "Picture"
// @Success 200 {object} dto.ProfileUpdateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /profile-update/{id} [put]
func (h *profileHandler) updateCustomerProfile(c *gin.Context) {
	customerID, ok := idParam(c, "id", "Invalid customer ID")
	if !ok {
		return
	}
	var form dto.CustomerProfileForm
	if !bindForm(c, &form, "Invalid profile form.") {
		return
	}
	files := &uploadedFiles{}
	defer files.close()
	picture, err := files.get(c, "profile_image")
	if err != nil {
		fail(c, err)
		return
	}

	pic, err := h.profileService.UpdateCustomerProfile(c.Request.Context(), middleware.GetPrincipal(c), customerID, form, picture)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileUpdateResponse{
		Success:    true,
		Message:    "Profile updated successfully",
		ProfilePic: utils.PublicUploadPath(pic),
	})
}

// getStore godoc
// @Summary Get a seller's storefront
// @Description Store details with the seller's active products.
// @Tags profiles
// @Produce json
// @Param id path int true "Seller ID"
// @Success 200 {object} dto.StoreResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /store/{id} [get]
func (h *profileHandler) getStore(c *gin.Context) {
	sellerID, ok := idParam(c, "id", "Invalid seller ID")
	if !ok {
		return
	}
	store, err := h.profileService.GetStore(c.Request.Context(), sellerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStoreResponse(store))
}

// getSellerProfile godoc
// @Summary Get a seller's profile
// @Tags profiles
// @Produce json
// @Param sellerId path int true "Seller ID"
// @Success 200 {object} dto.DataResponse[dto.SellerResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /seller/{sellerId} [get]
func (h *profileHandler) getSellerProfile(c *gin.Context) {
	sellerID, ok := idParam(c, "sellerId", "Invalid seller ID")
	if !ok {
		return
	}
	seller, err := h.profileService.GetSellerProfile(c.Request.Context(), sellerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WithData(dto.ToSellerResponse(*seller)))
}

// updateSellerProfile godoc
// @Summary Update a seller's store details
// @Description Multipart form; profile_image or profile_pic_url sets the store picture.
// @Tags profiles
// @Accept mpfd
// @Produce json
// @Param id path int true "Seller ID"
// @Param business_name formData string true "Business name"
// @Param business_address formData string true "Business address"
// @Param phone_num formData string true "Phone"
// @Param business_description formData string false "Description"
// @Param profile_pic_url formData string false "External picture URL"
// @Param profile_image formData file false "Picture"
// @Success 200 {object} dto.ProfileUpdateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /seller/update/{id} [put]
func (h *profileHandler) updateSellerProfile(c *gin.Context) {
	sellerID, ok := idParam(c, "id", "Invalid seller ID")
	if !ok {
		return
	}
	var form dto.SellerProfileForm
	if !bindForm(c, &form, "Invalid store form.") {
		return
	}
	files := &uploadedFiles{}
	defer files.close()
	picture, err := files.get(c, "profile_image")
	if err != nil {
		fail(c, err)
		return
	}

	image, err := h.profileService.UpdateSellerProfile(c.Request.Context(), middleware.GetPrincipal(c), sellerID, form, picture)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileUpdateResponse{
		Success:     true,
		Message:     "Store updated successfully",
		SellerImage: utils.PublicUploadPath(image),
	})
}
