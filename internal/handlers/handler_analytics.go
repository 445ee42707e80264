package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/dto"
	"github.com/vinque/vinque_backend/internal/middleware"
)

// analyticsHandler records engagement and serves seller dashboards.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

func newAnalyticsHandler(as portssvc.AnalyticsSvcFacade) *analyticsHandler {
	return &analyticsHandler{analyticsService: as}
}

// registerAnalyticsRoutes registers tracking and dashboard routes.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := newAnalyticsHandler(analyticsService)

	rg.POST("/visit-store", h.visitStore)
	rg.POST("/track-product-view", h.trackProductView)
	rg.GET("/seller-stats/:sellerId", h.sellerStats)
	rg.GET("/seller-revenue/:sellerId", h.sellerRevenue)
}

// visitStore godoc
// @Summary Record a storefront visit
// @Tags analytics
// @Accept json
// @Produce json
// @Param visit body dto.VisitStoreRequest true "Visit"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /visit-store [post]
func (h *analyticsHandler) visitStore(c *gin.Context) {
	var req dto.VisitStoreRequest
	if !bindJSON(c, &req, "customer_id and seller_id are required.") {
		return
	}
	if err := h.analyticsService.RecordStoreVisit(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Visit recorded"))
}

// trackProductView godoc
// @Summary Record a product view
// @Tags analytics
// @Accept json
// @Produce json
// @Param view body dto.TrackProductViewRequest true "View"
// @Success 200 {object} dto.TrackProductViewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /track-product-view [post]
func (h *analyticsHandler) trackProductView(c *gin.Context) {
	var req dto.TrackProductViewRequest
	if !bindJSON(c, &req, "product_id is required.") {
		return
	}
	count, err := h.analyticsService.TrackProductView(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TrackProductViewResponse{
		Status:    "success",
		Message:   "View tracked",
		ViewCount: count,
	})
}

// sellerStats godoc
// @Summary Seller dashboard statistics
// @Description Product counts, visitors, trending categories and visits per month of the current year.
// @Tags analytics
// @Produce json
// @Param sellerId path int true "Seller ID"
// @Success 200 {object} dto.DataResponse[dto.SellerStatsResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /seller-stats/{sellerId} [get]
func (h *analyticsHandler) sellerStats(c *gin.Context) {
	sellerID, ok := idParam(c, "sellerId", "Invalid seller ID")
	if !ok {
		return
	}
	stats, err := h.analyticsService.SellerStats(c.Request.Context(), middleware.GetPrincipal(c), sellerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WithData(dto.ToSellerStatsResponse(stats)))
}

// sellerRevenue godoc
// @Summary Seller revenue report
// @Description Revenue from completed orders, by category, month and product.
// @Tags analytics
// @Produce json
// @Param sellerId path int true "Seller ID"
// @Success 200 {object} dto.DataResponse[dto.SellerRevenueResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /seller-revenue/{sellerId} [get]
func (h *analyticsHandler) sellerRevenue(c *gin.Context) {
	sellerID, ok := idParam(c, "sellerId", "Invalid seller ID")
	if !ok {
		return
	}
	revenue, err := h.analyticsService.SellerRevenue(c.Request.Context(), middleware.GetPrincipal(c), sellerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WithData(dto.ToSellerRevenueResponse(revenue)))
}
