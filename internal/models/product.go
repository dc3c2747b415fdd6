package models

import "time"

// Product represents a configurable print product in the catalog
// (business cards, flyers, postcards, etc.).
// Fields are tagged for both DB scanning and JSON serialization.
type Product struct {
	ID          int    `db:"id" json:"id"`
	Slug        string `db:"slug" json:"slug"`
	Name        string `db:"name" json:"name"`
	Category    string `db:"category" json:"category"`
	Description string `db:"description" json:"description"`

	// BaseRate is the price in cents per square inch per unit before
	// paper multipliers and setup fees.
	BaseRate float64 `db:"base_rate" json:"baseRate"`
	// SetupFee is a flat per-line fee in cents.
	SetupFee int `db:"setup_fee" json:"setupFee"`

	QuantityGroupID *int `db:"quantity_group_id" json:"quantityGroupId,omitempty"`

	GangRunEligible bool      `db:"gang_run_eligible" json:"gangRunEligible"`
	IsActive        bool      `db:"is_active" json:"productStatus"`
	CreatedAt       time.Time `db:"created_at" json:"-"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}
