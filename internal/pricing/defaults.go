package pricing

import (
	"strconv"
	"strings"
)

// FindDefaultQuantity returns the option matching the configured default
// value, or nil when nothing matches. "custom" (case-insensitive) selects
// the first custom entry. Otherwise the match is by name or by the
// stringified numeric value, since the source configuration stores
// everything as strings. A nil result means "no default selected" and is
// not an error.
func FindDefaultQuantity(quantities []Quantity, defaultValue string) *Quantity {
	if strings.EqualFold(defaultValue, customToken) {
		for i := range quantities {
			if quantities[i].IsCustom {
				return &quantities[i]
			}
		}
		return nil
	}

	for i := range quantities {
		q := &quantities[i]
		if q.Name == defaultValue {
			return q
		}
		if q.Value != nil && strconv.Itoa(*q.Value) == defaultValue {
			return q
		}
	}
	return nil
}
