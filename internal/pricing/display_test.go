package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantityDisplayText(t *testing.T) {
	v500 := 500
	v1500 := 1500

	tests := []struct {
		name        string
		quantity    Quantity
		customValue *int
		want        string
	}{
		{"standard value", Quantity{Name: "500", Value: &v500}, nil, "500 units"},
		{"standard value with separators", Quantity{Name: "1500", Value: &v1500}, nil, "1,500 units"},
		{"custom with value", Quantity{Name: CustomOptionName, IsCustom: true}, &v1500, "Custom: 1,500 units"},
		{"custom without value", Quantity{Name: CustomOptionName, IsCustom: true}, nil, "Custom quantity"},
		{"label-only option", Quantity{Name: "Sample Pack"}, nil, "Sample Pack"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuantityDisplayText(tt.quantity, tt.customValue))
		})
	}
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{500, "500"},
		{5000, "5,000"},
		{10000, "10,000"},
		{1500000, "1,500,000"},
		{-12345, "-12,345"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatThousands(tt.in), "input %d", tt.in)
	}
}
