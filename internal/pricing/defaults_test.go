package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDefaultQuantity(t *testing.T) {
	group := QuantityGroup{
		ID:        "g",
		Values:    "100,250,500,1000,custom",
		CustomMin: intPtr(10),
		CustomMax: intPtr(50000),
	}
	quantities := TransformQuantityGroup(group)

	t.Run("matches by value", func(t *testing.T) {
		got := FindDefaultQuantity(quantities, "500")
		require.NotNil(t, got)
		require.NotNil(t, got.Value)
		assert.Equal(t, 500, *got.Value)
	})

	t.Run("custom keyword selects custom entry", func(t *testing.T) {
		got := FindDefaultQuantity(quantities, "custom")
		require.NotNil(t, got)
		assert.True(t, got.IsCustom)
	})

	t.Run("custom keyword is case-insensitive", func(t *testing.T) {
		got := FindDefaultQuantity(quantities, "CUSTOM")
		require.NotNil(t, got)
		assert.True(t, got.IsCustom)
	})

	t.Run("no match returns nil", func(t *testing.T) {
		assert.Nil(t, FindDefaultQuantity(quantities, "999"))
	})

	t.Run("custom keyword with no custom entry returns nil", func(t *testing.T) {
		plain := TransformQuantityGroup(QuantityGroup{ID: "p", Values: "100,250"})
		assert.Nil(t, FindDefaultQuantity(plain, "custom"))
	})

	t.Run("matches label-only options by name", func(t *testing.T) {
		labeled := TransformQuantityGroup(QuantityGroup{ID: "l", Values: "100,Sample Pack"})
		got := FindDefaultQuantity(labeled, "Sample Pack")
		require.NotNil(t, got)
		assert.Nil(t, got.Value)
	})
}
