package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/printdeck/printdeck_api/internal/models"
)

// StandardSizeRepository handles data access for the standard size catalog.
// Rows are written only by catalog seeding; the pricing path reads them.
type StandardSizeRepository struct {
	db *sqlx.DB
}

// NewStandardSizeRepository creates a new StandardSizeRepository.
func NewStandardSizeRepository(db *sqlx.DB) *StandardSizeRepository {
	return &StandardSizeRepository{db: db}
}

// GetAll returns all standard sizes in display order.
func (r *StandardSizeRepository) GetAll() ([]models.StandardSize, error) {
	const q = `SELECT * FROM standard_sizes ORDER BY sort_order, name`
	var sizes []models.StandardSize
	if err := r.db.Select(&sizes, q); err != nil {
		return nil, err
	}
	return sizes, nil
}

// GetByName returns a single standard size by its name key.
func (r *StandardSizeRepository) GetByName(name string) (*models.StandardSize, error) {
	const q = `SELECT * FROM standard_sizes WHERE name = $1 LIMIT 1`
	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var s models.StandardSize
	if err := stmt.Get(&s, name); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &s, nil
}

// Upsert inserts or updates a standard size by name. The pre-calculated
// area is written here at seed time so pricing never recomputes it.
func (r *StandardSizeRepository) Upsert(size *models.StandardSize) error {
	const q = `
        INSERT INTO standard_sizes (name, display_name, width, height, pre_calculated_value, sort_order)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (name) DO UPDATE SET
            display_name = EXCLUDED.display_name,
            width = EXCLUDED.width,
            height = EXCLUDED.height,
            pre_calculated_value = EXCLUDED.pre_calculated_value,
            sort_order = EXCLUDED.sort_order,
            updated_at = NOW()`

	_, err := r.db.Exec(q,
		size.Name,
		size.DisplayName,
		size.Width,
		size.Height,
		size.PreCalculatedValue,
		size.SortOrder,
	)
	return err
}
