package pricing

import (
	"math"

	"github.com/printdeck/printdeck_api/internal/models"
)

// PriceInput carries the already-fetched catalog rows and the resolved
// selection needed to price one line. All database access happens in the
// calling layer before pricing runs; nothing here blocks or suspends.
type PriceInput struct {
	// BaseRate is the product's rate in cents per square inch per unit.
	BaseRate float64
	// SetupFee is the product's flat per-line fee in cents.
	SetupFee int
	// Area in square inches. For standard sizes this is the row's
	// pre-calculated value, never recomputed from width*height.
	Area float64
	// Quantity is the customer-facing quantity (standard display value
	// or a validated custom value).
	Quantity int
	// Sides is 1 or 2.
	Sides        int
	PaperStockID int

	StandardQuantities []models.StandardQuantity
	PaperExceptions    []models.PaperException
}

// PriceResult is the computed price for one line.
type PriceResult struct {
	// EffectiveQuantity is the quantity price math used, which exceeds
	// the requested quantity for small orders.
	EffectiveQuantity int     `json:"effectiveQuantity"`
	Multiplier        float64 `json:"multiplier"`
	UnitPrice         int     `json:"unitPrice"`  // cents per requested unit
	TotalPrice        int     `json:"totalPrice"` // cents
}

// EffectiveQuantity maps a requested quantity to the quantity used in
// price math. An exact standard match uses that row's calculation value;
// a request between table entries rounds up to the next entry's
// calculation value; a request above the whole table is used as-is, since
// at that scale display and calculation values are equal.
func EffectiveQuantity(requested int, table []models.StandardQuantity) int {
	best := 0
	bestDisplay := 0
	for _, sq := range table {
		if sq.DisplayValue < requested {
			continue
		}
		if best == 0 || sq.DisplayValue < bestDisplay {
			best = sq.CalculationValue
			bestDisplay = sq.DisplayValue
		}
	}
	if best == 0 {
		return requested
	}
	return best
}

// CalculatePrice computes the unit and line price for one configured
// product line. The double-sided paper multiplier applies only when
// printing two sides; totals are rounded to whole cents at the end.
func CalculatePrice(in PriceInput) PriceResult {
	effective := EffectiveQuantity(in.Quantity, in.StandardQuantities)

	multiplier := 1.0
	if in.Sides == 2 {
		multiplier = DoubleSidedMultiplier(in.PaperExceptions, in.PaperStockID)
	}

	perUnit := in.BaseRate * in.Area * multiplier
	total := perUnit*float64(effective) + float64(in.SetupFee)

	totalCents := int(math.Round(total))
	unitCents := 0
	if in.Quantity > 0 {
		unitCents = int(math.Round(total / float64(in.Quantity)))
	}

	return PriceResult{
		EffectiveQuantity: effective,
		Multiplier:        multiplier,
		UnitPrice:         unitCents,
		TotalPrice:        totalCents,
	}
}
