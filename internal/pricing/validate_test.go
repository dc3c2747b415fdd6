package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func customOption(min, max *int) Quantity {
	return Quantity{ID: "g-0", Name: CustomOptionName, IsCustom: true, MinValue: min, MaxValue: max}
}

func TestValidateCustomQuantityNotCustom(t *testing.T) {
	v := 500
	standard := Quantity{ID: "g-0", Name: "500", Value: &v}

	got := ValidateCustomQuantity(1000, standard)
	assert.False(t, got.IsValid)
	assert.Equal(t, "Quantity is not a custom option", got.Error)
}

func TestValidateCustomQuantityNonPositive(t *testing.T) {
	for _, value := range []int{0, -1, -5000} {
		got := ValidateCustomQuantity(value, customOption(nil, nil))
		assert.False(t, got.IsValid, "value %d", value)
		assert.Equal(t, "Quantity must be greater than 0", got.Error)
	}
}

func TestValidateCustomQuantityGangRunIncrements(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		valid   bool
		wantErr string
	}{
		{"below threshold unconstrained", 4999, true, ""},
		{"exactly at threshold", 5000, true, ""},
		{"valid multiple", 10000, true, ""},
		{"large valid multiple", 45000, true, ""},
		{"off-increment", 7777, false, "Quantities above 5000 must be in increments of 5000. Try 5,000 or 10,000"},
		{"just above threshold", 5001, false, "Quantities above 5000 must be in increments of 5000. Try 5,000 or 10,000"},
		{"off-increment large", 12500, false, "Quantities above 5000 must be in increments of 5000. Try 10,000 or 15,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateCustomQuantity(tt.value, customOption(nil, nil))
			assert.Equal(t, tt.valid, got.IsValid)
			assert.Equal(t, tt.wantErr, got.Error)
		})
	}
}

func TestValidateCustomQuantityBoundsInclusive(t *testing.T) {
	q := customOption(intPtr(100), intPtr(10000))

	assert.True(t, ValidateCustomQuantity(100, q).IsValid)
	assert.True(t, ValidateCustomQuantity(10000, q).IsValid)

	low := ValidateCustomQuantity(99, q)
	assert.False(t, low.IsValid)
	assert.Equal(t, "Minimum quantity is 100", low.Error)

	high := ValidateCustomQuantity(10001, q)
	assert.False(t, high.IsValid)
	// The increment rule runs before the max check, so 10001 trips it first.
	assert.Equal(t, "Quantities above 5000 must be in increments of 5000. Try 10,000 or 15,000", high.Error)

	capped := customOption(nil, intPtr(8000))
	over := ValidateCustomQuantity(4500, customOption(nil, intPtr(4000)))
	assert.Equal(t, "Maximum quantity is 4,000", over.Error)
	assert.True(t, ValidateCustomQuantity(4000, capped).IsValid)
}

func TestValidateCustomQuantityCheckOrder(t *testing.T) {
	// A non-positive value on a min-bounded option reports the positivity
	// error, not the min bound: check order is fixed.
	q := customOption(intPtr(100), nil)
	got := ValidateCustomQuantity(0, q)
	assert.Equal(t, "Quantity must be greater than 0", got.Error)
}

func TestValidateCustomSize(t *testing.T) {
	c := SizeConstraints{AllowCustomSize: true, MinWidth: 1, MaxWidth: 48, MinHeight: 1, MaxHeight: 48}

	assert.True(t, ValidateCustomSize(3.5, 2, c).IsValid)
	assert.True(t, ValidateCustomSize(1, 48, c).IsValid)

	disallowed := ValidateCustomSize(3.5, 2, SizeConstraints{})
	assert.Equal(t, "Custom size is not available for this product", disallowed.Error)

	wide := ValidateCustomSize(50, 2, c)
	assert.Equal(t, "Width must be between 1 and 48 inches", wide.Error)

	tall := ValidateCustomSize(3.5, 0.5, c)
	assert.Equal(t, "Height must be between 1 and 48 inches", tall.Error)

	zero := ValidateCustomSize(0, 10, c)
	assert.Equal(t, "Width and height must be greater than 0", zero.Error)
}
