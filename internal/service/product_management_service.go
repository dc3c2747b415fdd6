package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/printdeck/printdeck_api/internal/cache"
	"github.com/printdeck/printdeck_api/internal/models"
	"github.com/printdeck/printdeck_api/internal/repository"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// ProductManagementService handles admin CRUD over the catalog: products,
// quantity groups, paper stocks, exceptions and pricing configs. Every
// write invalidates the affected catalog cache sections.
type ProductManagementService struct {
	productRepo *repository.ProductRepository
	groupRepo   *repository.QuantityGroupRepository
	paperRepo   *repository.PaperStockRepository
	configRepo  *repository.PricingConfigRepository
	sizeRepo    *repository.StandardSizeRepository
	qtyRepo     *repository.StandardQuantityRepository
	orderRepo   *repository.OrderRepository
	cache       *cache.CatalogCache
}

func NewProductManagementService(
	productRepo *repository.ProductRepository,
	groupRepo *repository.QuantityGroupRepository,
	paperRepo *repository.PaperStockRepository,
	configRepo *repository.PricingConfigRepository,
	sizeRepo *repository.StandardSizeRepository,
	qtyRepo *repository.StandardQuantityRepository,
	orderRepo *repository.OrderRepository,
	catalogCache *cache.CatalogCache,
) *ProductManagementService {
	return &ProductManagementService{
		productRepo: productRepo,
		groupRepo:   groupRepo,
		paperRepo:   paperRepo,
		configRepo:  configRepo,
		sizeRepo:    sizeRepo,
		qtyRepo:     qtyRepo,
		orderRepo:   orderRepo,
		cache:       catalogCache,
	}
}

// CreateProductRequest represents the request to create a new product.
type CreateProductRequest struct {
	Slug            string  `json:"slug" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	Description     string  `json:"description"`
	BaseRate        float64 `json:"baseRate" binding:"required"`
	SetupFee        int     `json:"setupFee"`
	QuantityGroupID *int    `json:"quantityGroupId"`
	GangRunEligible bool    `json:"gangRunEligible"`
}

// UpdateProductRequest represents the request to update a product.
// Pointer fields distinguish "leave unchanged" from explicit zeroes.
type UpdateProductRequest struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Description     *string  `json:"description"`
	BaseRate        *float64 `json:"baseRate"`
	SetupFee        *int     `json:"setupFee"`
	QuantityGroupID *int     `json:"quantityGroupId"`
	GangRunEligible *bool    `json:"gangRunEligible"`
	IsActive        *bool    `json:"isActive"`
}

// CreateProduct creates a new product. New products start inactive so
// pricing can be configured before the storefront sees them.
func (s *ProductManagementService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if existing, _ := s.productRepo.GetBySlug(slug); existing != nil {
		return nil, utils.ErrDuplicateSlug
	}
	if req.QuantityGroupID != nil {
		if _, err := s.groupRepo.GetByID(*req.QuantityGroupID); err != nil {
			if err == sql.ErrNoRows {
				return nil, errors.New("quantity group not found")
			}
			return nil, err
		}
	}

	product := &models.Product{
		Slug:            slug,
		Name:            req.Name,
		Category:        req.Category,
		Description:     req.Description,
		BaseRate:        req.BaseRate,
		SetupFee:        req.SetupFee,
		QuantityGroupID: req.QuantityGroupID,
		GangRunEligible: req.GangRunEligible,
		IsActive:        false,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, sectionCategories)
	return product, nil
}

// GetProduct retrieves a product by ID.
func (s *ProductManagementService) GetProduct(id int) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// ListProducts returns products for the admin panel with filters.
func (s *ProductManagementService) ListProducts(filter *repository.AdminProductFilter) (*repository.AdminProductResult, error) {
	return s.productRepo.GetAllAdmin(filter)
}

// UpdateProduct applies a partial update to a product.
func (s *ProductManagementService) UpdateProduct(ctx context.Context, id int, req *UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.BaseRate != nil {
		product.BaseRate = *req.BaseRate
	}
	if req.SetupFee != nil {
		product.SetupFee = *req.SetupFee
	}
	if req.QuantityGroupID != nil {
		if _, err := s.groupRepo.GetByID(*req.QuantityGroupID); err != nil {
			if err == sql.ErrNoRows {
				return nil, errors.New("quantity group not found")
			}
			return nil, err
		}
		product.QuantityGroupID = req.QuantityGroupID
	}
	if req.GangRunEligible != nil {
		product.GangRunEligible = *req.GangRunEligible
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, sectionCategories)
	return product, nil
}

// DeleteProduct removes a product and its pricing config.
func (s *ProductManagementService) DeleteProduct(ctx context.Context, id int) error {
	if _, err := s.GetProduct(id); err != nil {
		return err
	}
	if err := s.configRepo.Delete(id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, sectionCategories)
	return nil
}

// Quantity group CRUD

type QuantityGroupRequest struct {
	Name         string `json:"name" binding:"required"`
	Values       string `json:"values" binding:"required"`
	DefaultValue string `json:"defaultValue"`
	CustomMin    *int   `json:"customMin"`
	CustomMax    *int   `json:"customMax"`
	SortOrder    int    `json:"sortOrder"`
}

func (s *ProductManagementService) CreateQuantityGroup(ctx context.Context, req *QuantityGroupRequest) (*models.QuantityGroup, error) {
	group := &models.QuantityGroup{
		Name:         req.Name,
		Values:       req.Values,
		DefaultValue: req.DefaultValue,
		CustomMin:    req.CustomMin,
		CustomMax:    req.CustomMax,
		SortOrder:    req.SortOrder,
	}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, err
	}
	s.invalidate(ctx, sectionGroups)
	return group, nil
}

func (s *ProductManagementService) UpdateQuantityGroup(ctx context.Context, id int, req *QuantityGroupRequest) (*models.QuantityGroup, error) {
	group, err := s.groupRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("quantity group not found")
		}
		return nil, err
	}

	group.Name = req.Name
	group.Values = req.Values
	group.DefaultValue = req.DefaultValue
	group.CustomMin = req.CustomMin
	group.CustomMax = req.CustomMax
	group.SortOrder = req.SortOrder

	if err := s.groupRepo.Update(group); err != nil {
		return nil, err
	}
	s.invalidate(ctx, sectionGroups)
	return group, nil
}

func (s *ProductManagementService) DeleteQuantityGroup(ctx context.Context, id int) error {
	if err := s.groupRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, sectionGroups)
	return nil
}

// Paper stock CRUD

type PaperStockRequest struct {
	Name        string `json:"name" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	Weight      string `json:"weight"`
	IsActive    *bool  `json:"isActive"`
	SortOrder   int    `json:"sortOrder"`
}

func (s *ProductManagementService) CreatePaperStock(ctx context.Context, req *PaperStockRequest) (*models.PaperStock, error) {
	stock := &models.PaperStock{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Weight:      req.Weight,
		IsActive:    true,
		SortOrder:   req.SortOrder,
	}
	if req.IsActive != nil {
		stock.IsActive = *req.IsActive
	}
	if err := s.paperRepo.Create(stock); err != nil {
		return nil, err
	}
	s.invalidate(ctx, sectionPapers)
	return stock, nil
}

func (s *ProductManagementService) UpdatePaperStock(ctx context.Context, id int, req *PaperStockRequest) (*models.PaperStock, error) {
	stock, err := s.paperRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrPaperStockNotFound
		}
		return nil, err
	}

	stock.Name = req.Name
	stock.DisplayName = req.DisplayName
	stock.Weight = req.Weight
	stock.SortOrder = req.SortOrder
	if req.IsActive != nil {
		stock.IsActive = *req.IsActive
	}

	if err := s.paperRepo.Update(stock); err != nil {
		return nil, err
	}
	s.invalidate(ctx, sectionPapers)
	return stock, nil
}

// PaperExceptionRequest marks a stock with a pricing exception type.
type PaperExceptionRequest struct {
	ExceptionType         string  `json:"exceptionType" binding:"required"`
	DoubleSidedMultiplier float64 `json:"doubleSidedMultiplier" binding:"required"`
}

func (s *ProductManagementService) SetPaperException(ctx context.Context, paperStockID int, req *PaperExceptionRequest) (*models.PaperException, error) {
	if _, err := s.paperRepo.GetByID(paperStockID); err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrPaperStockNotFound
		}
		return nil, err
	}
	if req.DoubleSidedMultiplier <= 0 {
		return nil, errors.New("double-sided multiplier must be positive")
	}

	exception := &models.PaperException{
		PaperStockID:          paperStockID,
		ExceptionType:         models.PaperExceptionType(req.ExceptionType),
		DoubleSidedMultiplier: req.DoubleSidedMultiplier,
	}
	if err := s.paperRepo.UpsertException(exception); err != nil {
		return nil, err
	}
	s.invalidate(ctx, sectionPapers)
	return exception, nil
}

func (s *ProductManagementService) DeletePaperException(ctx context.Context, paperStockID int) error {
	if err := s.paperRepo.DeleteException(paperStockID); err != nil {
		return err
	}
	s.invalidate(ctx, sectionPapers)
	return nil
}

// Pricing config

type PricingConfigRequest struct {
	AllowCustomSize     bool    `json:"allowCustomSize"`
	AllowCustomQuantity bool    `json:"allowCustomQuantity"`
	MinCustomWidth      float64 `json:"minCustomWidth"`
	MaxCustomWidth      float64 `json:"maxCustomWidth"`
	MinCustomHeight     float64 `json:"minCustomHeight"`
	MaxCustomHeight     float64 `json:"maxCustomHeight"`
	MinCustomQuantity   int     `json:"minCustomQuantity"`
	MaxCustomQuantity   int     `json:"maxCustomQuantity"`
}

func (s *ProductManagementService) SetPricingConfig(id int, req *PricingConfigRequest) (*models.ProductPricingConfig, error) {
	if _, err := s.GetProduct(id); err != nil {
		return nil, err
	}

	cfg := &models.ProductPricingConfig{
		ProductID:           id,
		AllowCustomSize:     req.AllowCustomSize,
		AllowCustomQuantity: req.AllowCustomQuantity,
		MinCustomWidth:      req.MinCustomWidth,
		MaxCustomWidth:      req.MaxCustomWidth,
		MinCustomHeight:     req.MinCustomHeight,
		MaxCustomHeight:     req.MaxCustomHeight,
		MinCustomQuantity:   req.MinCustomQuantity,
		MaxCustomQuantity:   req.MaxCustomQuantity,
	}
	if err := s.configRepo.Upsert(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Standard sizes and quantities

func (s *ProductManagementService) UpsertStandardSize(ctx context.Context, size *models.StandardSize) error {
	// The pre-calculated area is derived once here, never at price time.
	size.PreCalculatedValue = size.Width * size.Height
	if err := s.sizeRepo.Upsert(size); err != nil {
		return err
	}
	s.invalidate(ctx, sectionSizes)
	return nil
}

func (s *ProductManagementService) UpsertStandardQuantity(ctx context.Context, sq *models.StandardQuantity) error {
	if sq.DisplayValue <= 0 || sq.CalculationValue <= 0 {
		return errors.New("display and calculation values must be positive")
	}
	if sq.CalculationValue < sq.DisplayValue {
		return errors.New("calculation value cannot be below display value")
	}
	if err := s.qtyRepo.Upsert(sq); err != nil {
		return err
	}
	s.invalidate(ctx, sectionQuantities)
	return nil
}

// Orders (admin)

func (s *ProductManagementService) ListOrders(filter *repository.AdminOrderFilter) ([]models.Order, int, error) {
	return s.orderRepo.ListAdmin(filter)
}

func (s *ProductManagementService) OrderStats() ([]repository.OrderStats, error) {
	return s.orderRepo.GetStats()
}

func (s *ProductManagementService) UpdateOrderStatus(id int, status models.OrderStatus) error {
	switch status {
	case models.OrderStatusPending, models.OrderStatusPaid, models.OrderStatusBatched,
		models.OrderStatusInProduction, models.OrderStatusShipped, models.OrderStatusCancelled:
	default:
		return errors.New("invalid order status")
	}
	return s.orderRepo.UpdateStatus(id, status)
}

func (s *ProductManagementService) invalidate(ctx context.Context, section string) {
	if err := s.cache.Invalidate(ctx, section); err != nil {
		log.Warn().Err(err).Str("section", section).Msg("Failed to invalidate catalog cache")
	}
}
