package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestTransformQuantityGroup(t *testing.T) {
	group := QuantityGroup{
		ID:        "qg1",
		Values:    "100,250,500,1000,custom",
		CustomMin: intPtr(10),
		CustomMax: intPtr(50000),
	}

	got := TransformQuantityGroup(group)
	require.Len(t, got, 5)

	names := make([]string, 0, len(got))
	for _, q := range got {
		names = append(names, q.Name)
	}
	assert.Equal(t, []string{"100", "250", "500", "1000", "Custom..."}, names)

	// Standard entries carry parsed values and no bounds.
	require.NotNil(t, got[0].Value)
	assert.Equal(t, 100, *got[0].Value)
	assert.False(t, got[0].IsCustom)
	assert.Nil(t, got[0].MinValue)
	assert.Nil(t, got[0].MaxValue)

	// Custom sentinel carries the group's bounds and no value.
	custom := got[4]
	assert.True(t, custom.IsCustom)
	assert.Nil(t, custom.Value)
	require.NotNil(t, custom.MinValue)
	require.NotNil(t, custom.MaxValue)
	assert.Equal(t, 10, *custom.MinValue)
	assert.Equal(t, 50000, *custom.MaxValue)

	// Ids are namespaced by the group id in token order.
	assert.Equal(t, "qg1-0", got[0].ID)
	assert.Equal(t, "qg1-4", got[4].ID)
}

func TestTransformQuantityGroupMalformedTokens(t *testing.T) {
	got := TransformQuantityGroup(QuantityGroup{ID: "g", Values: "100,,250,   ,500"})
	require.Len(t, got, 3)
	assert.Equal(t, "100", got[0].Name)
	assert.Equal(t, "250", got[1].Name)
	assert.Equal(t, "500", got[2].Name)
}

func TestTransformQuantityGroupCaseInsensitiveCustom(t *testing.T) {
	got := TransformQuantityGroup(QuantityGroup{ID: "g", Values: "100,250,Custom,500"})
	require.Len(t, got, 4)
	assert.True(t, got[2].IsCustom)
	assert.Equal(t, CustomOptionName, got[2].Name)
	assert.False(t, got[3].IsCustom)
}

func TestTransformQuantityGroupNonNumericToken(t *testing.T) {
	// Non-numeric tokens are tolerated as label-only options, not rejected.
	got := TransformQuantityGroup(QuantityGroup{ID: "g", Values: "100,Sample Pack,250"})
	require.Len(t, got, 3)
	assert.Equal(t, "Sample Pack", got[1].Name)
	assert.Nil(t, got[1].Value)
	assert.False(t, got[1].IsCustom)
}

func TestTransformQuantityGroupEmptyValues(t *testing.T) {
	assert.Empty(t, TransformQuantityGroup(QuantityGroup{ID: "g", Values: ""}))
	assert.Empty(t, TransformQuantityGroup(QuantityGroup{ID: "g", Values: " , ,"}))
}

func TestTransformQuantityGroupIdempotent(t *testing.T) {
	group := QuantityGroup{ID: "g", Values: "100,custom", CustomMin: intPtr(1)}
	first := TransformQuantityGroup(group)
	second := TransformQuantityGroup(group)
	assert.Equal(t, first, second)
}

func TestTransformQuantityGroups(t *testing.T) {
	groups := []QuantityGroup{
		{ID: "a", Values: "100,250"},
		{ID: "b", Values: "500,custom", CustomMax: intPtr(99999)},
	}

	got := TransformQuantityGroups(groups)
	require.Len(t, got, 4)
	assert.Equal(t, "a-0", got[0].ID)
	assert.Equal(t, "a-1", got[1].ID)
	assert.Equal(t, "b-0", got[2].ID)
	assert.Equal(t, "b-1", got[3].ID)
	assert.True(t, got[3].IsCustom)
}
