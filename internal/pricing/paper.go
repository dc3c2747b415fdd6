package pricing

import "github.com/printdeck/printdeck_api/internal/models"

// DefaultDoubleSidedMultiplier is the cardstock behavior applied when a
// paper stock has no exception row.
const DefaultDoubleSidedMultiplier = 1.0

// DoubleSidedMultiplier resolves the double-sided print multiplier for a
// paper stock from the already-fetched exception rows. This is a total
// function: absence of a row is the cardstock default, not an error.
func DoubleSidedMultiplier(exceptions []models.PaperException, paperStockID int) float64 {
	for _, e := range exceptions {
		if e.PaperStockID == paperStockID && e.ExceptionType == models.ExceptionTextPaper {
			return e.DoubleSidedMultiplier
		}
	}
	return DefaultDoubleSidedMultiplier
}
