package service

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/printdeck/printdeck_api/internal/cache"
	"github.com/printdeck/printdeck_api/internal/models"
	"github.com/printdeck/printdeck_api/internal/pricing"
	"github.com/printdeck/printdeck_api/internal/repository"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// Catalog cache section keys.
const (
	sectionSizes      = "sizes"
	sectionQuantities = "quantities"
	sectionGroups     = "quantity_groups"
	sectionPapers     = "paper_stocks"
	sectionCategories = "categories"
)

// QuantityGroupOptions is a quantity group rendered for the storefront:
// the structured options plus the resolved default.
type QuantityGroupOptions struct {
	GroupID    int                `json:"groupId"`
	GroupName  string             `json:"groupName"`
	Quantities []pricing.Quantity `json:"quantities"`
	Default    *pricing.Quantity  `json:"default,omitempty"`
}

// CatalogService serves the storefront catalog: sizes, quantity options,
// paper stocks and product categories. List responses are cached in
// Redis with a short TTL; admin writes invalidate through
// ProductManagementService.
type CatalogService struct {
	sizeRepo    *repository.StandardSizeRepository
	qtyRepo     *repository.StandardQuantityRepository
	groupRepo   *repository.QuantityGroupRepository
	paperRepo   *repository.PaperStockRepository
	productRepo *repository.ProductRepository
	cache       *cache.CatalogCache
}

func NewCatalogService(
	sizeRepo *repository.StandardSizeRepository,
	qtyRepo *repository.StandardQuantityRepository,
	groupRepo *repository.QuantityGroupRepository,
	paperRepo *repository.PaperStockRepository,
	productRepo *repository.ProductRepository,
	catalogCache *cache.CatalogCache,
) *CatalogService {
	return &CatalogService{
		sizeRepo:    sizeRepo,
		qtyRepo:     qtyRepo,
		groupRepo:   groupRepo,
		paperRepo:   paperRepo,
		productRepo: productRepo,
		cache:       catalogCache,
	}
}

// GetSizes returns all standard sizes in sort order.
func (s *CatalogService) GetSizes(ctx context.Context) ([]models.StandardSize, error) {
	var sizes []models.StandardSize
	if s.cache.Get(ctx, sectionSizes, &sizes) {
		return sizes, nil
	}

	sizes, err := s.sizeRepo.GetAll()
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, sectionSizes, sizes); err != nil {
		log.Warn().Err(err).Msg("Failed to cache standard sizes")
	}
	return sizes, nil
}

// GetStandardQuantities returns the display-to-calculation quantity table.
func (s *CatalogService) GetStandardQuantities(ctx context.Context) ([]models.StandardQuantity, error) {
	var quantities []models.StandardQuantity
	if s.cache.Get(ctx, sectionQuantities, &quantities) {
		return quantities, nil
	}

	quantities, err := s.qtyRepo.GetAll()
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, sectionQuantities, quantities); err != nil {
		log.Warn().Err(err).Msg("Failed to cache standard quantities")
	}
	return quantities, nil
}

// GetQuantityGroups returns every quantity group rendered into structured
// options with its default resolved.
func (s *CatalogService) GetQuantityGroups(ctx context.Context) ([]QuantityGroupOptions, error) {
	var rendered []QuantityGroupOptions
	if s.cache.Get(ctx, sectionGroups, &rendered) {
		return rendered, nil
	}

	groups, err := s.groupRepo.GetAll()
	if err != nil {
		return nil, err
	}

	rendered = make([]QuantityGroupOptions, 0, len(groups))
	for _, g := range groups {
		rendered = append(rendered, renderGroup(&g))
	}

	if err := s.cache.Set(ctx, sectionGroups, rendered); err != nil {
		log.Warn().Err(err).Msg("Failed to cache quantity groups")
	}
	return rendered, nil
}

// GetQuantityGroup renders a single group by id.
func (s *CatalogService) GetQuantityGroup(_ context.Context, id int) (*QuantityGroupOptions, error) {
	group, err := s.groupRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrQuantityGroupEmpty
		}
		return nil, err
	}

	opts := renderGroup(group)
	return &opts, nil
}

// GetPaperStocks returns all active paper stocks.
func (s *CatalogService) GetPaperStocks(ctx context.Context) ([]models.PaperStock, error) {
	var stocks []models.PaperStock
	if s.cache.Get(ctx, sectionPapers, &stocks) {
		return stocks, nil
	}

	stocks, err := s.paperRepo.GetAllActive()
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, sectionPapers, stocks); err != nil {
		log.Warn().Err(err).Msg("Failed to cache paper stocks")
	}
	return stocks, nil
}

// GetCategories returns the distinct product categories.
func (s *CatalogService) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if s.cache.Get(ctx, sectionCategories, &categories) {
		return categories, nil
	}

	categories, err := s.productRepo.GetDistinctCategories()
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, sectionCategories, categories); err != nil {
		log.Warn().Err(err).Msg("Failed to cache categories")
	}
	return categories, nil
}

// renderGroup converts a stored group row into storefront options. The
// engine takes a string id so option ids stay stable across groups.
func renderGroup(g *models.QuantityGroup) QuantityGroupOptions {
	quantities := pricing.TransformQuantityGroup(pricing.QuantityGroup{
		ID:           strconv.Itoa(g.ID),
		Values:       g.Values,
		DefaultValue: g.DefaultValue,
		CustomMin:    g.CustomMin,
		CustomMax:    g.CustomMax,
	})

	return QuantityGroupOptions{
		GroupID:    g.ID,
		GroupName:  g.Name,
		Quantities: quantities,
		Default:    pricing.FindDefaultQuantity(quantities, g.DefaultValue),
	}
}
