package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/printdeck/printdeck_api/internal/cache"
	"github.com/printdeck/printdeck_api/internal/models"
	"github.com/printdeck/printdeck_api/internal/pricing"
	"github.com/printdeck/printdeck_api/internal/repository"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// ValidationError carries a customer-facing validation failure out of the
// quote flow. Handlers render the message with a 422 instead of the
// generic error envelope.
type ValidationError struct {
	Result pricing.ValidationResult
}

func (e *ValidationError) Error() string {
	return e.Result.Error
}

// QuoteRequest is one product configuration to price.
type QuoteRequest struct {
	ProductID    int     `json:"productId" binding:"required"`
	SizeName     string  `json:"sizeName"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Quantity     int     `json:"quantity" binding:"required"`
	IsCustomQty  bool    `json:"isCustomQuantity"`
	PaperStockID int     `json:"paperStockId" binding:"required"`
	Sides        int     `json:"sides" binding:"required"`
}

// QuoteResult is a priced configuration. The quote id references the
// cached price at checkout so the order charges exactly what was quoted.
type QuoteResult struct {
	QuoteID           string  `json:"quoteId"`
	ProductID         int     `json:"productId"`
	ProductName       string  `json:"productName"`
	SizeName          string  `json:"sizeName,omitempty"`
	Width             float64 `json:"width"`
	Height            float64 `json:"height"`
	Quantity          int     `json:"quantity"`
	QuantityText      string  `json:"quantityText"`
	EffectiveQuantity int     `json:"effectiveQuantity"`
	PaperStockID      int     `json:"paperStockId"`
	Sides             int     `json:"sides"`
	Multiplier        float64 `json:"multiplier"`
	UnitPrice         int     `json:"unitPrice"`
	TotalPrice        int     `json:"totalPrice"`
	ExpiresInSeconds  int     `json:"expiresInSeconds"`
}

// QuoteService prices product configurations. It resolves sizes,
// quantities and paper exceptions from the catalog, runs the pricing
// engine and caches the result for checkout.
type QuoteService struct {
	productRepo *repository.ProductRepository
	configRepo  *repository.PricingConfigRepository
	groupRepo   *repository.QuantityGroupRepository
	sizeRepo    *repository.StandardSizeRepository
	qtyRepo     *repository.StandardQuantityRepository
	paperRepo   *repository.PaperStockRepository
	quoteCache  *cache.QuoteCache
	quoteTTL    int
}

func NewQuoteService(
	productRepo *repository.ProductRepository,
	configRepo *repository.PricingConfigRepository,
	groupRepo *repository.QuantityGroupRepository,
	sizeRepo *repository.StandardSizeRepository,
	qtyRepo *repository.StandardQuantityRepository,
	paperRepo *repository.PaperStockRepository,
	quoteCache *cache.QuoteCache,
	quoteTTLSeconds int,
) *QuoteService {
	return &QuoteService{
		productRepo: productRepo,
		configRepo:  configRepo,
		groupRepo:   groupRepo,
		sizeRepo:    sizeRepo,
		qtyRepo:     qtyRepo,
		paperRepo:   paperRepo,
		quoteCache:  quoteCache,
		quoteTTL:    quoteTTLSeconds,
	}
}

// Quote prices one configuration for the given client. Customer input
// problems come back as *ValidationError; catalog lookups that fail come
// back as the usual sentinel errors.
func (s *QuoteService) Quote(ctx context.Context, clientID int, req *QuoteRequest) (*QuoteResult, error) {
	product, err := s.productRepo.GetByID(req.ProductID)
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

	// Size: a named standard size uses its pre-calculated area; custom
	// dimensions are validated against the product's bounds.
	var area float64
	if req.SizeName != "" {
		size, err := s.sizeRepo.GetByName(req.SizeName)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, utils.ErrSizeNotFound
			}
			return nil, err
		}
		area = size.PreCalculatedValue
		req.Width = size.Width
		req.Height = size.Height
	} else {
		result := pricing.ValidateCustomSize(req.Width, req.Height, pricing.SizeConstraints{
			AllowCustomSize: cfg.AllowCustomSize,
			MinWidth:        cfg.MinCustomWidth,
			MaxWidth:        cfg.MaxCustomWidth,
			MinHeight:       cfg.MinCustomHeight,
			MaxHeight:       cfg.MaxCustomHeight,
		})
		if !result.IsValid {
			return nil, &ValidationError{Result: result}
		}
		area = req.Width * req.Height
	}

	// Quantity: standard requests must match one of the group's options;
	// custom requests go through the full validation chain.
	option, err := s.resolveQuantityOption(product, cfg, req.Quantity, req.IsCustomQty)
	if err != nil {
		return nil, err
	}

	paper, err := s.paperRepo.GetByID(req.PaperStockID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrPaperStockNotFound
		}
		return nil, err
	}
	if !paper.IsActive {
		return nil, utils.ErrPaperStockNotFound
	}

	if req.Sides != 1 && req.Sides != 2 {
		return nil, &ValidationError{Result: pricing.ValidationResult{Error: "Sides must be 1 or 2"}}
	}

	table, err := s.qtyRepo.GetAll()
	if err != nil {
		return nil, err
	}
	exceptions, err := s.paperRepo.GetAllExceptions()
	if err != nil {
		return nil, err
	}

	price := pricing.CalculatePrice(pricing.PriceInput{
		BaseRate:           product.BaseRate,
		SetupFee:           product.SetupFee,
		Area:               area,
		Quantity:           req.Quantity,
		Sides:              req.Sides,
		PaperStockID:       req.PaperStockID,
		StandardQuantities: table,
		PaperExceptions:    exceptions,
	})

	quoteID := uuid.New().String()
	data := &cache.QuoteData{
		QuoteID:      quoteID,
		ClientID:     clientID,
		ProductID:    product.ID,
		SizeName:     req.SizeName,
		Width:        req.Width,
		Height:       req.Height,
		Quantity:     req.Quantity,
		IsCustomQty:  req.IsCustomQty,
		PaperStockID: req.PaperStockID,
		Sides:        req.Sides,
		UnitPrice:    price.UnitPrice,
		TotalPrice:   price.TotalPrice,
	}
	if err := s.quoteCache.Set(ctx, data); err != nil {
		log.Warn().Err(err).Str("quote_id", quoteID).Msg("Failed to cache quote")
	}

	quantityText := pricing.QuantityDisplayText(*option, customValueFor(option, req.Quantity))

	return &QuoteResult{
		QuoteID:           quoteID,
		ProductID:         product.ID,
		ProductName:       product.Name,
		SizeName:          req.SizeName,
		Width:             req.Width,
		Height:            req.Height,
		Quantity:          req.Quantity,
		QuantityText:      quantityText,
		EffectiveQuantity: price.EffectiveQuantity,
		PaperStockID:      req.PaperStockID,
		Sides:             req.Sides,
		Multiplier:        price.Multiplier,
		UnitPrice:         price.UnitPrice,
		TotalPrice:        price.TotalPrice,
		ExpiresInSeconds:  s.quoteTTL,
	}, nil
}

// ValidateQuantity runs the custom quantity rules for a product without
// pricing anything. Used by storefronts for inline field validation.
func (s *QuoteService) ValidateQuantity(productID, value int) (pricing.ValidationResult, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return pricing.ValidationResult{}, utils.ErrProductNotFound
		}
		return pricing.ValidationResult{}, err
	}

	cfg, err := s.configRepo.GetByProductID(product.ID)
	if err != nil {
		return pricing.ValidationResult{}, err
	}

	option, err := s.customOption(product, cfg)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return verr.Result, nil
		}
		return pricing.ValidationResult{}, err
	}
	return pricing.ValidateCustomQuantity(value, *option), nil
}

// ValidateSize runs the custom size rules for a product without pricing
// anything.
func (s *QuoteService) ValidateSize(productID int, width, height float64) (pricing.ValidationResult, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return pricing.ValidationResult{}, utils.ErrProductNotFound
		}
		return pricing.ValidationResult{}, err
	}

	cfg, err := s.configRepo.GetByProductID(product.ID)
	if err != nil {
		return pricing.ValidationResult{}, err
	}

	return pricing.ValidateCustomSize(width, height, pricing.SizeConstraints{
		AllowCustomSize: cfg.AllowCustomSize,
		MinWidth:        cfg.MinCustomWidth,
		MaxWidth:        cfg.MaxCustomWidth,
		MinHeight:       cfg.MinCustomHeight,
		MaxHeight:       cfg.MaxCustomHeight,
	}), nil
}

// resolveQuantityOption maps a requested quantity to the group option it
// selects, validating custom values along the way.
func (s *QuoteService) resolveQuantityOption(product *models.Product, cfg *models.ProductPricingConfig, value int, isCustom bool) (*pricing.Quantity, error) {
	if isCustom {
		option, err := s.customOption(product, cfg)
		if err != nil {
			return nil, err
		}
		if result := pricing.ValidateCustomQuantity(value, *option); !result.IsValid {
			return nil, &ValidationError{Result: result}
		}
		return option, nil
	}

	if value <= 0 {
		return nil, &ValidationError{Result: pricing.ValidationResult{Error: "Quantity must be greater than 0"}}
	}

	options, err := s.groupOptions(product)
	if err != nil {
		return nil, err
	}
	if options == nil {
		// Products without a quantity group accept any positive quantity.
		return &pricing.Quantity{Name: strconv.Itoa(value), Value: &value}, nil
	}

	for i := range options {
		if options[i].Value != nil && *options[i].Value == value {
			return &options[i], nil
		}
	}
	return nil, &ValidationError{Result: pricing.ValidationResult{Error: "Quantity is not available for this product"}}
}

// customOption returns the product's custom quantity entry with bounds
// resolved: group bounds when set, the pricing config bounds otherwise.
func (s *QuoteService) customOption(product *models.Product, cfg *models.ProductPricingConfig) (*pricing.Quantity, error) {
	if !cfg.AllowCustomQuantity {
		return nil, &ValidationError{Result: pricing.ValidationResult{Error: "Custom quantity is not available for this product"}}
	}

	options, err := s.groupOptions(product)
	if err != nil {
		return nil, err
	}

	var option *pricing.Quantity
	for i := range options {
		if options[i].IsCustom {
			option = &options[i]
			break
		}
	}
	if option == nil {
		if options != nil {
			return nil, &ValidationError{Result: pricing.ValidationResult{Error: "Custom quantity is not available for this product"}}
		}
		option = &pricing.Quantity{Name: pricing.CustomOptionName, IsCustom: true}
	}

	if option.MinValue == nil {
		option.MinValue = &cfg.MinCustomQuantity
	}
	if option.MaxValue == nil {
		option.MaxValue = &cfg.MaxCustomQuantity
	}
	return option, nil
}

// groupOptions returns the transformed options for the product's group,
// or nil when the product has no group assigned.
func (s *QuoteService) groupOptions(product *models.Product) ([]pricing.Quantity, error) {
	if product.QuantityGroupID == nil {
		return nil, nil
	}

	group, err := s.groupRepo.GetByID(*product.QuantityGroupID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return pricing.TransformQuantityGroup(pricing.QuantityGroup{
		ID:           strconv.Itoa(group.ID),
		Values:       group.Values,
		DefaultValue: group.DefaultValue,
		CustomMin:    group.CustomMin,
		CustomMax:    group.CustomMax,
	}), nil
}

func customValueFor(option *pricing.Quantity, value int) *int {
	if option.IsCustom {
		return &value
	}
	return nil
}
