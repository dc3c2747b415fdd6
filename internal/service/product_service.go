package service

import (
	"context"
	"database/sql"

	"github.com/printdeck/printdeck_api/internal/models"
	"github.com/printdeck/printdeck_api/internal/repository"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// ProductDetail is a product plus everything the storefront needs to
// render its configurator: quantity options, custom constraints and the
// available sizes and papers.
type ProductDetail struct {
	Product       *models.Product              `json:"product"`
	Quantities    *QuantityGroupOptions        `json:"quantities,omitempty"`
	PricingConfig *models.ProductPricingConfig `json:"pricingConfig"`
	Sizes         []models.StandardSize        `json:"sizes"`
	PaperStocks   []models.PaperStock          `json:"paperStocks"`
}

// ProductService serves public product reads.
type ProductService struct {
	productRepo *repository.ProductRepository
	configRepo  *repository.PricingConfigRepository
	catalog     *CatalogService
}

func NewProductService(
	productRepo *repository.ProductRepository,
	configRepo *repository.PricingConfigRepository,
	catalog *CatalogService,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		configRepo:  configRepo,
		catalog:     catalog,
	}
}

// ListProducts returns active products, optionally filtered by category
// or search term, with pagination.
func (s *ProductService) ListProducts(category, search string, page, limit int) ([]models.Product, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.productRepo.GetAllPaged(category, search, page, limit)
}

// GetProductDetail returns a product by slug with its full configurator
// data. Products without a quantity group omit the quantities block.
func (s *ProductService) GetProductDetail(ctx context.Context, slug string) (*ProductDetail, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}

	cfg, err := s.configRepo.GetByProductID(product.ID)
	if err != nil {
		return nil, err
	}

	detail := &ProductDetail{Product: product, PricingConfig: cfg}

	if product.QuantityGroupID != nil {
		opts, err := s.catalog.GetQuantityGroup(ctx, *product.QuantityGroupID)
		if err != nil && err != utils.ErrQuantityGroupEmpty {
			return nil, err
		}
		detail.Quantities = opts
	}

	if detail.Sizes, err = s.catalog.GetSizes(ctx); err != nil {
		return nil, err
	}
	if detail.PaperStocks, err = s.catalog.GetPaperStocks(ctx); err != nil {
		return nil, err
	}
	return detail, nil
}
