package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/printdeck/printdeck_api/internal/service"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// CatalogHandler serves the public catalog endpoints: sizes, quantity
// options, paper stocks and categories.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetSizes returns all standard print sizes.
func (h *CatalogHandler) GetSizes(c *gin.Context) {
	sizes, err := h.catalogService.GetSizes(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get sizes")
		return
	}
	utils.Success(c, 200, "Sizes retrieved successfully", gin.H{"sizes": sizes})
}

// GetQuantities returns the standard quantity table.
func (h *CatalogHandler) GetQuantities(c *gin.Context) {
	quantities, err := h.catalogService.GetStandardQuantities(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get quantities")
		return
	}
	utils.Success(c, 200, "Quantities retrieved successfully", gin.H{"quantities": quantities})
}

// GetQuantityGroups returns every quantity group with structured options.
func (h *CatalogHandler) GetQuantityGroups(c *gin.Context) {
	groups, err := h.catalogService.GetQuantityGroups(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get quantity groups")
		return
	}
	utils.Success(c, 200, "Quantity groups retrieved successfully", gin.H{"groups": groups})
}

// GetQuantityGroup returns one quantity group with structured options.
func (h *CatalogHandler) GetQuantityGroup(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid group id")
		return
	}

	group, err := h.catalogService.GetQuantityGroup(c.Request.Context(), id)
	if err != nil {
		if err == utils.ErrQuantityGroupEmpty {
			utils.Error(c, 404, "NOT_FOUND", "Quantity group not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get quantity group")
		return
	}
	utils.Success(c, 200, "Quantity group retrieved successfully", group)
}

// GetPaperStocks returns all active paper stocks.
func (h *CatalogHandler) GetPaperStocks(c *gin.Context) {
	stocks, err := h.catalogService.GetPaperStocks(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get paper stocks")
		return
	}
	utils.Success(c, 200, "Paper stocks retrieved successfully", gin.H{"paperStocks": stocks})
}

// GetCategories returns the distinct product categories.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.GetCategories(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get categories")
		return
	}
	utils.Success(c, 200, "Categories retrieved successfully", gin.H{"categories": categories})
}
