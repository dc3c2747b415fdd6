package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/printdeck/printdeck_api/internal/middleware"
	"github.com/printdeck/printdeck_api/internal/service"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// QuoteHandler prices product configurations for authenticated clients.
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler constructs a QuoteHandler.
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// CreateQuote prices one configuration and caches it for checkout.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req service.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	client := middleware.GetClient(c)
	if client == nil {
		utils.Error(c, 401, "UNAUTHORIZED", "Missing client context")
		return
	}

	result, err := h.quoteService.Quote(c.Request.Context(), client.ID, &req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.Error(c, 422, "VALIDATION_FAILED", verr.Result.Error)
		case err == utils.ErrProductNotFound:
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		case err == utils.ErrSizeNotFound:
			utils.Error(c, 404, "SIZE_NOT_FOUND", "Standard size not found")
		case err == utils.ErrPaperStockNotFound:
			utils.Error(c, 404, "PAPER_STOCK_NOT_FOUND", "Paper stock not found")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create quote")
		}
		return
	}

	utils.Success(c, 200, "Quote created successfully", result)
}

// ValidateInput runs custom quantity or custom size validation without
// pricing. Failures are result values with a 200, never errors.
func (h *QuoteHandler) ValidateInput(c *gin.Context) {
	var req struct {
		ProductID int     `json:"productId" binding:"required"`
		Quantity  int     `json:"quantity"`
		Width     float64 `json:"width"`
		Height    float64 `json:"height"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if req.Quantity == 0 && req.Width == 0 && req.Height == 0 {
		utils.Error(c, 400, "INVALID_REQUEST", "Provide a quantity or width and height")
		return
	}

	payload := gin.H{}
	if req.Quantity != 0 {
		result, err := h.quoteService.ValidateQuantity(req.ProductID, req.Quantity)
		if err != nil {
			if err == utils.ErrProductNotFound {
				utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
				return
			}
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to validate quantity")
			return
		}
		payload["quantity"] = result
	}
	if req.Width != 0 || req.Height != 0 {
		result, err := h.quoteService.ValidateSize(req.ProductID, req.Width, req.Height)
		if err != nil {
			if err == utils.ErrProductNotFound {
				utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
				return
			}
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to validate size")
			return
		}
		payload["size"] = result
	}

	utils.Success(c, 200, "Validation completed", payload)
}
