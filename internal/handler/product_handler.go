package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/printdeck/printdeck_api/internal/service"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// ProductHandler handles public product endpoints.
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GetProducts returns the product list with optional filters and pagination.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	category := c.Query("category") // business-cards, flyers, etc
	search := c.Query("search")

	// pagination
	page := 1
	limit := 20
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	products, total, err := h.productService.ListProducts(category, search, page, limit)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get products")
		return
	}

	utils.SuccessWithPagination(c, 200, "Products retrieved successfully", gin.H{
		"products": products,
	}, page, limit, total)
}

// GetProduct returns one product by slug with its full configurator data.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	slug := c.Param("slug")

	detail, err := h.productService.GetProductDetail(c.Request.Context(), slug)
	if err != nil {
		if err == utils.ErrProductNotFound {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get product")
		return
	}

	utils.Success(c, 200, "Product retrieved successfully", detail)
}
