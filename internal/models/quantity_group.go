package models

import "time"

// QuantityGroup is a human-edited configuration row holding the quantity
// options offered for a set of products. Values is a comma-separated
// string of tokens; the literal token "custom" (case-insensitive) enables
// a customer-specified quantity bounded by CustomMin/CustomMax.
type QuantityGroup struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Values       string    `db:"values" json:"values"`
	DefaultValue string    `db:"default_value" json:"defaultValue"`
	CustomMin    *int      `db:"custom_min" json:"customMin"`
	CustomMax    *int      `db:"custom_max" json:"customMax"`
	SortOrder    int       `db:"sort_order" json:"sortOrder"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
