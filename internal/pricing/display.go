package pricing

import "fmt"

// QuantityDisplayText renders a quantity option for UI display. For the
// custom option a non-nil customValue produces "Custom: 1,500 units";
// without one the literal "Custom quantity" is returned. Standard options
// render their value with separators, and label-only options (nil value)
// fall back to the raw name. Pure formatting; the input is not mutated.
func QuantityDisplayText(quantity Quantity, customValue *int) string {
	if quantity.IsCustom {
		if customValue != nil {
			return fmt.Sprintf("Custom: %s units", FormatThousands(*customValue))
		}
		return "Custom quantity"
	}
	if quantity.Value != nil {
		return fmt.Sprintf("%s units", FormatThousands(*quantity.Value))
	}
	return quantity.Name
}
