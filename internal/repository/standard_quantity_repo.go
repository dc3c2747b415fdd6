package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/printdeck/printdeck_api/internal/models"
)

// StandardQuantityRepository handles data access for the standard
// quantity catalog (display value -> calculation value).
type StandardQuantityRepository struct {
	db *sqlx.DB
}

// NewStandardQuantityRepository creates a new StandardQuantityRepository.
func NewStandardQuantityRepository(db *sqlx.DB) *StandardQuantityRepository {
	return &StandardQuantityRepository{db: db}
}

// GetAll returns all standard quantities ordered by display value.
func (r *StandardQuantityRepository) GetAll() ([]models.StandardQuantity, error) {
	const q = `SELECT * FROM standard_quantities ORDER BY display_value`
	var quantities []models.StandardQuantity
	if err := r.db.Select(&quantities, q); err != nil {
		return nil, err
	}
	return quantities, nil
}

// Upsert inserts or updates a standard quantity by display value.
func (r *StandardQuantityRepository) Upsert(sq *models.StandardQuantity) error {
	const q = `
        INSERT INTO standard_quantities (display_value, calculation_value, sort_order)
        VALUES ($1, $2, $3)
        ON CONFLICT (display_value) DO UPDATE SET
            calculation_value = EXCLUDED.calculation_value,
            sort_order = EXCLUDED.sort_order,
            updated_at = NOW()`

	_, err := r.db.Exec(q, sq.DisplayValue, sq.CalculationValue, sq.SortOrder)
	return err
}
