package models

import "time"

// StandardQuantity is an immutable catalog entry mapping the quantity a
// customer sees to the quantity pricing math actually uses. Below 5000
// units the calculation value is inflated to amortize fixed setup costs;
// at or above 5000 the two are equal.
type StandardQuantity struct {
	ID               int       `db:"id" json:"id"`
	DisplayValue     int       `db:"display_value" json:"displayValue"`
	CalculationValue int       `db:"calculation_value" json:"calculationValue"`
	SortOrder        int       `db:"sort_order" json:"sortOrder"`
	CreatedAt        time.Time `db:"created_at" json:"-"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}
