package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// QuantityGroup is the input record for the transformer: a raw
// comma-separated values string plus custom-range bounds. The service
// layer builds it from the persisted quantity_groups row.
type QuantityGroup struct {
	ID           string
	Values       string
	DefaultValue string
	CustomMin    *int
	CustomMax    *int
}

// Quantity is a structured runtime quantity option derived from a group
// on every request; it is never persisted or mutated after construction.
// Value is nil for the custom sentinel and for non-numeric tokens, so
// callers doing arithmetic must check it.
type Quantity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Value    *int   `json:"value"`
	IsCustom bool   `json:"isCustom"`
	MinValue *int   `json:"minValue"`
	MaxValue *int   `json:"maxValue"`
}

// CustomOptionName is the display name given to the custom sentinel entry.
const CustomOptionName = "Custom..."

const customToken = "custom"

// TransformQuantityGroup converts a group's comma-separated values string
// into structured quantity options. Empty and whitespace-only tokens are
// dropped silently because the source configuration is human-edited.
// Output order follows token order; ids are namespaced by the group id.
func TransformQuantityGroup(group QuantityGroup) []Quantity {
	if group.Values == "" {
		return []Quantity{}
	}

	quantities := make([]Quantity, 0)
	for _, raw := range strings.Split(group.Values, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}

		q := Quantity{ID: fmt.Sprintf("%s-%d", group.ID, len(quantities))}
		if strings.EqualFold(token, customToken) {
			q.Name = CustomOptionName
			q.IsCustom = true
			q.MinValue = group.CustomMin
			q.MaxValue = group.CustomMax
		} else {
			q.Name = token
			if v, err := strconv.Atoi(token); err == nil {
				q.Value = &v
			}
		}
		quantities = append(quantities, q)
	}
	return quantities
}

// TransformQuantityGroups flat-maps TransformQuantityGroup over multiple
// groups. Ids stay unique because each group namespaces its own entries;
// no cross-group dedup is performed.
func TransformQuantityGroups(groups []QuantityGroup) []Quantity {
	quantities := make([]Quantity, 0)
	for _, g := range groups {
		quantities = append(quantities, TransformQuantityGroup(g)...)
	}
	return quantities
}
