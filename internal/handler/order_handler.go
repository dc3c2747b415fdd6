package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/printdeck/printdeck_api/internal/middleware"
	"github.com/printdeck/printdeck_api/internal/service"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// OrderHandler handles storefront order endpoints.
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder creates an order from cached quotes.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	client := middleware.GetClient(c)
	if client == nil {
		utils.Error(c, 401, "UNAUTHORIZED", "Missing client context")
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), client.ID, &req)
	if err != nil {
		switch err {
		case utils.ErrQuoteNotFound:
			utils.Error(c, 404, "QUOTE_NOT_FOUND", "Quote not found or expired")
		case utils.ErrArtworkNotFound:
			utils.Error(c, 404, "ARTWORK_NOT_FOUND", "Artwork not found")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create order")
		}
		return
	}

	utils.Success(c, 201, "Order created successfully", order)
}

// GetOrder returns one of the client's orders by order number.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	client := middleware.GetClient(c)
	if client == nil {
		utils.Error(c, 401, "UNAUTHORIZED", "Missing client context")
		return
	}

	order, err := h.orderService.GetOrder(client.ID, c.Param("orderNumber"))
	if err != nil {
		if err == utils.ErrOrderNotFound {
			utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get order")
		return
	}

	utils.Success(c, 200, "Order retrieved successfully", order)
}

// PayOrder marks an order as paid. Sandbox requests report success
// without touching the order so integrations can be tested end to end.
func (h *OrderHandler) PayOrder(c *gin.Context) {
	client := middleware.GetClient(c)
	if client == nil {
		utils.Error(c, 401, "UNAUTHORIZED", "Missing client context")
		return
	}

	if middleware.IsSandbox(c) {
		order, err := h.orderService.GetOrder(client.ID, c.Param("orderNumber"))
		if err != nil {
			utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		utils.Success(c, 200, "Sandbox payment accepted", order)
		return
	}

	order, err := h.orderService.MarkPaid(client.ID, c.Param("orderNumber"))
	if err != nil {
		if err == utils.ErrOrderNotFound {
			utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update order")
		return
	}

	utils.Success(c, 200, "Order marked as paid", order)
}
