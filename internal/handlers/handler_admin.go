package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/dto"
)

// adminHandler serves the admin console.
type adminHandler struct {
	adminService portssvc.AdminSvcFacade
}

func newAdminHandler(as portssvc.AdminSvcFacade) *adminHandler {
	return &adminHandler{adminService: as}
}

// registerAdminRoutes registers routes that require the Admin role. rg must
// already enforce it.
func registerAdminRoutes(rg *gin.RouterGroup, adminService portssvc.AdminSvcFacade) {
	h := newAdminHandler(adminService)

	admin := rg.Group("/admin")
	{
		admin.GET("/pending-sellers", h.listPendingSellers)
		admin.PUT("/approve-seller/:userId", h.approveSeller)
		admin.PUT("/reject-seller/:userId", h.rejectSeller)
		admin.GET("/purchases", h.listPurchases)
	}
	rg.GET("/A_History", h.loginHistory)
	rg.GET("/accounts", h.listAccounts)
	rg.GET("/seller", h.listSellers)
}

// listPendingSellers godoc
// @Summary List seller applications awaiting review
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DataResponse[[]dto.SellerResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/pending-sellers [get]
func (h *adminHandler) listPendingSellers(c *gin.Context) {
	sellers, err := h.adminService.ListPendingSellers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WithData(dto.ToSellerResponses(sellers)))
}

// approveSeller godoc
// @Summary Approve a pending seller
// @Tags admin
// @Produce json
// @Param userId path int true "Seller's user ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} dto.ErrorResponse "Seller not found or already processed"
// @Security BearerAuth
// @Router /admin/approve-seller/{userId} [put]
func (h *adminHandler) approveSeller(c *gin.Context) {
	userID, ok := idParam(c, "userId", "Invalid user ID")
	if !ok {
		return
	}
	if err := h.adminService.ApproveSeller(c.Request.Context(), userID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Seller approved"))
}

// rejectSeller godoc
// @Summary Reject a pending seller
// @Tags admin
// @Produce json
// @Param userId path int true "Seller's user ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} dto.ErrorResponse "Seller not found or already processed"
// @Security BearerAuth
// @Router /admin/reject-seller/{userId} [put]
func (h *adminHandler) rejectSeller(c *gin.Context) {
	userID, ok := idParam(c, "userId", "Invalid user ID")
	if !ok {
		return
	}
	if err := h.adminService.RejectSeller(c.Request.Context(), userID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Seller rejected"))
}

// loginHistory godoc
// @Summary Login history
// @Description Purges sessions past retention, then lists the rest newest first.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DataResponse[[]dto.LoginHistoryResponse]
// @Security BearerAuth
// @Router /A_History [get]
func (h *adminHandler) loginHistory(c *gin.Context) {
	sessions, err := h.adminService.LoginHistory(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WithData(dto.ToLoginHistoryResponses(sessions)))
}

// listAccounts godoc
// @Summary List accounts
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DataResponse[[]dto.AccountResponse]
// @Security BearerAuth
// @Router /accounts [get]
func (h *adminHandler) listAccounts(c *gin.Context) {
	accounts, err := h.adminService.ListAccounts(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WithData(dto.ToAccountResponses(accounts)))
}

// listSellers godoc
// @Summary List sellers
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DataResponse[[]dto.SellerResponse]
// @Security BearerAuth
// @Router /seller [get]
func (h *adminHandler) listSellers(c *gin.Context) {
	sellers, err := h.adminService.ListSellers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WithData(dto.ToSellerResponses(sellers)))
}

// listPurchases godoc
// @Summary List all purchases
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DataResponse[[]dto.PurchaseResponse]
// @Security BearerAuth
// @Router /admin/purchases [get]
func (h *adminHandler) listPurchases(c *gin.Context) {
	purchases, err := h.adminService.ListPurchases(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WithData(dto.ToPurchaseResponses(purchases)))
}
