package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/printdeck/printdeck_api/internal/models"
)

var quantityTable = []models.StandardQuantity{
	{DisplayValue: 100, CalculationValue: 125},
	{DisplayValue: 250, CalculationValue: 300},
	{DisplayValue: 500, CalculationValue: 550},
	{DisplayValue: 1000, CalculationValue: 1050},
	{DisplayValue: 2500, CalculationValue: 2550},
	{DisplayValue: 5000, CalculationValue: 5000},
	{DisplayValue: 10000, CalculationValue: 10000},
}

var textPaperException = []models.PaperException{
	{PaperStockID: 7, ExceptionType: models.ExceptionTextPaper, DoubleSidedMultiplier: 1.75},
}

func TestEffectiveQuantity(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{"exact standard match uses calculation value", 100, 125},
		{"at threshold calc equals display", 5000, 5000},
		{"between entries rounds up to next calc value", 300, 550},
		{"below smallest entry", 50, 125},
		{"above entire table used as-is", 15000, 15000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveQuantity(tt.requested, quantityTable))
		})
	}
}

func TestEffectiveQuantityEmptyTable(t *testing.T) {
	assert.Equal(t, 750, EffectiveQuantity(750, nil))
}

func TestDoubleSidedMultiplier(t *testing.T) {
	assert.Equal(t, 1.75, DoubleSidedMultiplier(textPaperException, 7))
	assert.Equal(t, 1.0, DoubleSidedMultiplier(textPaperException, 3))
	assert.Equal(t, 1.0, DoubleSidedMultiplier(nil, 7))
}

func TestCalculatePriceSingleSided(t *testing.T) {
	// Business card: 3.5x2in (area 7), 500 units -> calc value 550,
	// rate 0.02 cents/sqin/unit, setup fee 500 cents.
	got := CalculatePrice(PriceInput{
		BaseRate:           0.02,
		SetupFee:           500,
		Area:               7,
		Quantity:           500,
		Sides:              1,
		PaperStockID:       3,
		StandardQuantities: quantityTable,
		PaperExceptions:    textPaperException,
	})

	assert.Equal(t, 550, got.EffectiveQuantity)
	assert.Equal(t, 1.0, got.Multiplier)
	// 0.02 * 7 * 550 + 500 = 577
	assert.Equal(t, 577, got.TotalPrice)
	assert.Equal(t, 1, got.UnitPrice)
}

func TestCalculatePriceTextPaperDoubleSided(t *testing.T) {
	got := CalculatePrice(PriceInput{
		BaseRate:           0.02,
		SetupFee:           500,
		Area:               7,
		Quantity:           500,
		Sides:              2,
		PaperStockID:       7,
		StandardQuantities: quantityTable,
		PaperExceptions:    textPaperException,
	})

	assert.Equal(t, 1.75, got.Multiplier)
	// 0.02 * 7 * 1.75 * 550 + 500 = 634.75 -> 635
	assert.Equal(t, 635, got.TotalPrice)
}

func TestCalculatePriceDoubleSidedCardstockNoMultiplier(t *testing.T) {
	got := CalculatePrice(PriceInput{
		BaseRate:           0.02,
		SetupFee:           0,
		Area:               7,
		Quantity:           5000,
		Sides:              2,
		PaperStockID:       3, // no exception row
		StandardQuantities: quantityTable,
		PaperExceptions:    textPaperException,
	})

	assert.Equal(t, 1.0, got.Multiplier)
	assert.Equal(t, 5000, got.EffectiveQuantity)
	// 0.02 * 7 * 5000 = 700
	assert.Equal(t, 700, got.TotalPrice)
}

func TestCalculatePriceSmallOrderAmortization(t *testing.T) {
	// 100 units price as 125: the calculation value recoups fixed costs.
	small := CalculatePrice(PriceInput{
		BaseRate:           1,
		Area:               10,
		Quantity:           100,
		Sides:              1,
		StandardQuantities: quantityTable,
	})
	assert.Equal(t, 125, small.EffectiveQuantity)
	assert.Equal(t, 1250, small.TotalPrice)
	// Unit price is per requested unit, not per effective unit.
	assert.Equal(t, 13, small.UnitPrice) // 1250/100 = 12.5 -> rounds to 13
}
