package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/printdeck/printdeck_api/internal/models"
	"github.com/printdeck/printdeck_api/internal/repository"
	"github.com/printdeck/printdeck_api/internal/service"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// ProductManagementHandler exposes admin catalog CRUD.
type ProductManagementHandler struct {
	mgmt *service.ProductManagementService
}

// NewProductManagementHandler constructs a ProductManagementHandler.
func NewProductManagementHandler(mgmt *service.ProductManagementService) *ProductManagementHandler {
	return &ProductManagementHandler{mgmt: mgmt}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid id")
		return 0, false
	}
	return id, true
}

// Products

func (h *ProductManagementHandler) ListProducts(c *gin.Context) {
	filter := &repository.AdminProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     1,
		Limit:    50,
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if v := c.Query("isActive"); v != "" {
		active := v == "true"
		filter.IsActive = &active
	}

	result, err := h.mgmt.ListProducts(filter)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to list products")
		return
	}
	utils.SuccessWithPagination(c, 200, "Products retrieved successfully", gin.H{
		"products": result.Products,
	}, filter.Page, filter.Limit, result.TotalItems)
}

func (h *ProductManagementHandler) CreateProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.mgmt.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		if err == utils.ErrDuplicateSlug {
			utils.Error(c, 409, "DUPLICATE_SLUG", "A product with this slug already exists")
			return
		}
		utils.Error(c, 422, "CREATE_FAILED", err.Error())
		return
	}
	utils.Success(c, 201, "Product created successfully", product)
}

func (h *ProductManagementHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.mgmt.GetProduct(id)
	if err != nil {
		if err == utils.ErrProductNotFound {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get product")
		return
	}
	utils.Success(c, 200, "Product retrieved successfully", product)
}

func (h *ProductManagementHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.mgmt.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		if err == utils.ErrProductNotFound {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 422, "UPDATE_FAILED", err.Error())
		return
	}
	utils.Success(c, 200, "Product updated successfully", product)
}

func (h *ProductManagementHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.mgmt.DeleteProduct(c.Request.Context(), id); err != nil {
		if err == utils.ErrProductNotFound {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete product")
		return
	}
	utils.Success(c, 200, "Product deleted successfully", nil)
}

// Pricing config

func (h *ProductManagementHandler) SetPricingConfig(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.PricingConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	cfg, err := h.mgmt.SetPricingConfig(id, &req)
	if err != nil {
		if err == utils.ErrProductNotFound {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 422, "UPDATE_FAILED", err.Error())
		return
	}
	utils.Success(c, 200, "Pricing config updated successfully", cfg)
}

// Quantity groups

func (h *ProductManagementHandler) CreateQuantityGroup(c *gin.Context) {
	var req service.QuantityGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	group, err := h.mgmt.CreateQuantityGroup(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, 422, "CREATE_FAILED", err.Error())
		return
	}
	utils.Success(c, 201, "Quantity group created successfully", group)
}

func (h *ProductManagementHandler) UpdateQuantityGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.QuantityGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	group, err := h.mgmt.UpdateQuantityGroup(c.Request.Context(), id, &req)
	if err != nil {
		utils.Error(c, 422, "UPDATE_FAILED", err.Error())
		return
	}
	utils.Success(c, 200, "Quantity group updated successfully", group)
}

func (h *ProductManagementHandler) DeleteQuantityGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.mgmt.DeleteQuantityGroup(c.Request.Context(), id); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete quantity group")
		return
	}
	utils.Success(c, 200, "Quantity group deleted successfully", nil)
}

// Paper stocks

func (h *ProductManagementHandler) CreatePaperStock(c *gin.Context) {
	var req service.PaperStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	stock, err := h.mgmt.CreatePaperStock(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, 422, "CREATE_FAILED", err.Error())
		return
	}
	utils.Success(c, 201, "Paper stock created successfully", stock)
}

func (h *ProductManagementHandler) UpdatePaperStock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.PaperStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	stock, err := h.mgmt.UpdatePaperStock(c.Request.Context(), id, &req)
	if err != nil {
		if err == utils.ErrPaperStockNotFound {
			utils.Error(c, 404, "PAPER_STOCK_NOT_FOUND", "Paper stock not found")
			return
		}
		utils.Error(c, 422, "UPDATE_FAILED", err.Error())
		return
	}
	utils.Success(c, 200, "Paper stock updated successfully", stock)
}

func (h *ProductManagementHandler) SetPaperException(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.PaperExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	exception, err := h.mgmt.SetPaperException(c.Request.Context(), id, &req)
	if err != nil {
		if err == utils.ErrPaperStockNotFound {
			utils.Error(c, 404, "PAPER_STOCK_NOT_FOUND", "Paper stock not found")
			return
		}
		utils.Error(c, 422, "UPDATE_FAILED", err.Error())
		return
	}
	utils.Success(c, 200, "Paper exception updated successfully", exception)
}

func (h *ProductManagementHandler) DeletePaperException(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.mgmt.DeletePaperException(c.Request.Context(), id); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete paper exception")
		return
	}
	utils.Success(c, 200, "Paper exception deleted successfully", nil)
}

// Standard sizes and quantities

func (h *ProductManagementHandler) UpsertStandardSize(c *gin.Context) {
	var size models.StandardSize
	if err := c.ShouldBindJSON(&size); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if size.Name == "" || size.Width <= 0 || size.Height <= 0 {
		utils.Error(c, 422, "VALIDATION_FAILED", "Name, width and height are required")
		return
	}

	if err := h.mgmt.UpsertStandardSize(c.Request.Context(), &size); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to save size")
		return
	}
	utils.Success(c, 200, "Size saved successfully", size)
}

func (h *ProductManagementHandler) UpsertStandardQuantity(c *gin.Context) {
	var sq models.StandardQuantity
	if err := c.ShouldBindJSON(&sq); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.mgmt.UpsertStandardQuantity(c.Request.Context(), &sq); err != nil {
		utils.Error(c, 422, "VALIDATION_FAILED", err.Error())
		return
	}
	utils.Success(c, 200, "Quantity saved successfully", sq)
}

// Orders

func (h *ProductManagementHandler) ListOrders(c *gin.Context) {
	filter := &repository.AdminOrderFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   1,
		Limit:  50,
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}

	orders, total, err := h.mgmt.ListOrders(filter)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to list orders")
		return
	}
	utils.SuccessWithPagination(c, 200, "Orders retrieved successfully", gin.H{
		"orders": orders,
	}, filter.Page, filter.Limit, total)
}

func (h *ProductManagementHandler) OrderStats(c *gin.Context) {
	stats, err := h.mgmt.OrderStats()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get order stats")
		return
	}
	utils.Success(c, 200, "Order stats retrieved successfully", gin.H{"stats": stats})
}

func (h *ProductManagementHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.mgmt.UpdateOrderStatus(id, models.OrderStatus(req.Status)); err != nil {
		utils.Error(c, 422, "UPDATE_FAILED", err.Error())
		return
	}
	utils.Success(c, 200, "Order status updated successfully", nil)
}
