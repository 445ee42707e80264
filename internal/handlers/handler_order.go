package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/dto"
	"github.com/vinque/vinque_backend/internal/middleware"
)

// orderHandler handles HTTP requests related to orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: os}
}

// registerOrderRoutes registers routes related to orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	rg.POST("/orders", h.createOrder)
	rg.GET("/orders/:userId", h.listBuyerOrders)
	rg.PUT("/orders/:orderId/status", h.updateOrderStatus)
	rg.GET("/seller-orders/:sellerId", h.listSellerOrders)
}

// createOrder godoc
// @Summary Capture an order
// @Description Records a paid order in Pending status.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.CreateOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate transaction"
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindJSON(c, &req, "Missing required order fields.") {
		return
	}
	orderID, err := h.orderService.CreateOrder(c.Request.Context(), middleware.GetPrincipal(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		Status:  "success",
		Message: "Order created successfully",
		OrderID: orderID,
	})
}

// listBuyerOrders godoc
// @Summary List a buyer's orders
// @Tags orders
// @Produce json
// @Param userId path int true "Buyer user ID"
// @Success 200 {object} dto.OrdersResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders/{userId} [get]
func (h *orderHandler) listBuyerOrders(c *gin.Context) {
	userID, ok := idParam(c, "userId", "Invalid user ID")
	if !ok {
		return
	}
	orders, err := h.orderService.ListBuyerOrders(c.Request.Context(), middleware.GetPrincipal(c), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBuyerOrdersResponse(orders))
}

// listSellerOrders godoc
// @Summary List orders for a seller's products
// @Tags orders
// @Produce json
// @Param sellerId path int true "Seller ID"
// @Success 200 {object} dto.OrdersResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /seller-orders/{sellerId} [get]
func (h *orderHandler) listSellerOrders(c *gin.Context) {
	sellerID, ok := idParam(c, "sellerId", "Invalid seller ID")
	if !ok {
		return
	}
	orders, err := h.orderService.ListSellerOrders(c.Request.Context(), middleware.GetPrincipal(c), sellerID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSellerOrdersResponse(orders))
}

// updateOrderStatus godoc
// @Summary Move an order between Pending and Complete
// @Tags orders
// @Accept json
// @Produce json
// @Param orderId path int true "Order ID"
// @Param status body dto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders/{orderId}/status [put]
func (h *orderHandler) updateOrderStatus(c *gin.Context) {
	orderID, ok := idParam(c, "orderId", "Invalid order ID")
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if !bindJSON(c, &req, "Status must be Pending or Complete.") {
		return
	}
	if err := h.orderService.UpdateOrderStatus(c.Request.Context(), middleware.GetPrincipal(c), orderID, req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Order status updated"))
}
