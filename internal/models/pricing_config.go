package models

import "time"

// ProductPricingConfig holds per-product custom size/quantity constraints.
// One row per product; products without a row use DefaultPricingConfig.
type ProductPricingConfig struct {
	ID                  int       `db:"id" json:"id"`
	ProductID           int       `db:"product_id" json:"productId"`
	AllowCustomSize     bool      `db:"allow_custom_size" json:"allowCustomSize"`
	AllowCustomQuantity bool      `db:"allow_custom_quantity" json:"allowCustomQuantity"`
	MinCustomWidth      float64   `db:"min_custom_width" json:"minCustomWidth"`
	MaxCustomWidth      float64   `db:"max_custom_width" json:"maxCustomWidth"`
	MinCustomHeight     float64   `db:"min_custom_height" json:"minCustomHeight"`
	MaxCustomHeight     float64   `db:"max_custom_height" json:"maxCustomHeight"`
	MinCustomQuantity   int       `db:"min_custom_quantity" json:"minCustomQuantity"`
	MaxCustomQuantity   int       `db:"max_custom_quantity" json:"maxCustomQuantity"`
	CreatedAt           time.Time `db:"created_at" json:"-"`
	UpdatedAt           time.Time `db:"updated_at" json:"updatedAt"`
}

// DefaultPricingConfig returns the global fallback constraints applied to
// products without an explicit configuration row.
func DefaultPricingConfig(productID int) *ProductPricingConfig {
	return &ProductPricingConfig{
		ProductID:           productID,
		AllowCustomSize:     true,
		AllowCustomQuantity: true,
		MinCustomWidth:      1,
		MaxCustomWidth:      48,
		MinCustomHeight:     1,
		MaxCustomHeight:     48,
		MinCustomQuantity:   1,
		MaxCustomQuantity:   1000000,
	}
}
