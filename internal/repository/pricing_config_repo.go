package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/printdeck/printdeck_api/internal/models"
)

// PricingConfigRepository handles data access for per-product pricing
// configuration rows.
type PricingConfigRepository struct {
	db *sqlx.DB
}

// NewPricingConfigRepository creates a new PricingConfigRepository.
func NewPricingConfigRepository(db *sqlx.DB) *PricingConfigRepository {
	return &PricingConfigRepository{db: db}
}

// GetByProductID returns the pricing config for a product. Products
// without a row fall back to models.DefaultPricingConfig; that fallback
// happens here so callers always get a usable config.
func (r *PricingConfigRepository) GetByProductID(productID int) (*models.ProductPricingConfig, error) {
	const q = `SELECT * FROM product_pricing_configs WHERE product_id = $1 LIMIT 1`
	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var cfg models.ProductPricingConfig
	if err := stmt.Get(&cfg, productID); err != nil {
		if err == sql.ErrNoRows {
			return models.DefaultPricingConfig(productID), nil
		}
		return nil, err
	}
	return &cfg, nil
}

// Upsert inserts or updates the pricing config for a product.
func (r *PricingConfigRepository) Upsert(cfg *models.ProductPricingConfig) error {
	const q = `
        INSERT INTO product_pricing_configs
            (product_id, allow_custom_size, allow_custom_quantity,
             min_custom_width, max_custom_width, min_custom_height, max_custom_height,
             min_custom_quantity, max_custom_quantity)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (product_id) DO UPDATE SET
            allow_custom_size = EXCLUDED.allow_custom_size,
            allow_custom_quantity = EXCLUDED.allow_custom_quantity,
            min_custom_width = EXCLUDED.min_custom_width,
            max_custom_width = EXCLUDED.max_custom_width,
            min_custom_height = EXCLUDED.min_custom_height,
            max_custom_height = EXCLUDED.max_custom_height,
            min_custom_quantity = EXCLUDED.min_custom_quantity,
            max_custom_quantity = EXCLUDED.max_custom_quantity,
            updated_at = NOW()`

	_, err := r.db.Exec(q,
		cfg.ProductID,
		cfg.AllowCustomSize,
		cfg.AllowCustomQuantity,
		cfg.MinCustomWidth,
		cfg.MaxCustomWidth,
		cfg.MinCustomHeight,
		cfg.MaxCustomHeight,
		cfg.MinCustomQuantity,
		cfg.MaxCustomQuantity,
	)
	return err
}

// Delete removes the pricing config row for a product, restoring global
// defaults.
func (r *PricingConfigRepository) Delete(productID int) error {
	const q = `DELETE FROM product_pricing_configs WHERE product_id = $1`
	_, err := r.db.Exec(q, productID)
	return err
}
