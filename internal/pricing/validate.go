package pricing

import "fmt"

// gangRunThreshold is the quantity above which production batches print
// runs; custom quantities past it must be exact multiples of it.
const gangRunThreshold = 5000

// ValidationResult is the outcome of validating a customer-supplied
// value. Validation failures are reported as values, never panics or
// Go errors; callers must check IsValid before trusting the input.
type ValidationResult struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

func invalid(format string, args ...any) ValidationResult {
	return ValidationResult{Error: fmt.Sprintf(format, args...)}
}

// ValidateCustomQuantity checks a customer-entered quantity against the
// custom option's bounds and the gang-run increment rule. Checks run in a
// fixed order and the first failure short-circuits, so error messages are
// deterministic for any given input.
func ValidateCustomQuantity(value int, customQuantity Quantity) ValidationResult {
	if !customQuantity.IsCustom {
		return invalid("Quantity is not a custom option")
	}
	if value <= 0 {
		return invalid("Quantity must be greater than 0")
	}
	if value > gangRunThreshold && value%gangRunThreshold != 0 {
		lower := value / gangRunThreshold * gangRunThreshold
		upper := lower + gangRunThreshold
		return invalid("Quantities above 5000 must be in increments of 5000. Try %s or %s",
			FormatThousands(lower), FormatThousands(upper))
	}
	if customQuantity.MinValue != nil && value < *customQuantity.MinValue {
		return invalid("Minimum quantity is %s", FormatThousands(*customQuantity.MinValue))
	}
	if customQuantity.MaxValue != nil && value > *customQuantity.MaxValue {
		return invalid("Maximum quantity is %s", FormatThousands(*customQuantity.MaxValue))
	}
	return ValidationResult{IsValid: true}
}

// SizeConstraints carries the per-product custom size bounds in inches.
type SizeConstraints struct {
	AllowCustomSize bool
	MinWidth        float64
	MaxWidth        float64
	MinHeight       float64
	MaxHeight       float64
}

// ValidateCustomSize checks customer-entered dimensions against the
// product's configured bounds, in the same report-as-value style as
// ValidateCustomQuantity.
func ValidateCustomSize(width, height float64, c SizeConstraints) ValidationResult {
	if !c.AllowCustomSize {
		return invalid("Custom size is not available for this product")
	}
	if width <= 0 || height <= 0 {
		return invalid("Width and height must be greater than 0")
	}
	if width < c.MinWidth || width > c.MaxWidth {
		return invalid("Width must be between %g and %g inches", c.MinWidth, c.MaxWidth)
	}
	if height < c.MinHeight || height > c.MaxHeight {
		return invalid("Height must be between %g and %g inches", c.MinHeight, c.MaxHeight)
	}
	return ValidationResult{IsValid: true}
}
