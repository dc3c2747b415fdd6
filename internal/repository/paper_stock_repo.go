package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/printdeck/printdeck_api/internal/models"
)

// PaperStockRepository handles data access for paper stocks and their
// pricing exceptions.
type PaperStockRepository struct {
	db *sqlx.DB
}

// NewPaperStockRepository creates a new PaperStockRepository.
func NewPaperStockRepository(db *sqlx.DB) *PaperStockRepository {
	return &PaperStockRepository{db: db}
}

// GetAllActive returns all active paper stocks in display order.
func (r *PaperStockRepository) GetAllActive() ([]models.PaperStock, error) {
	const q = `SELECT * FROM paper_stocks WHERE is_active = true ORDER BY sort_order, name`
	var stocks []models.PaperStock
	if err := r.db.Select(&stocks, q); err != nil {
		return nil, err
	}
	return stocks, nil
}

// GetByID returns a single paper stock by id.
func (r *PaperStockRepository) GetByID(id int) (*models.PaperStock, error) {
	const q = `SELECT * FROM paper_stocks WHERE id = $1 LIMIT 1`
	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var s models.PaperStock
	if err := stmt.Get(&s, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &s, nil
}

// Create creates a new paper stock.
func (r *PaperStockRepository) Create(stock *models.PaperStock) error {
	query := `INSERT INTO paper_stocks (name, display_name, weight, is_active, sort_order)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(query,
		stock.Name,
		stock.DisplayName,
		stock.Weight,
		stock.IsActive,
		stock.SortOrder,
	).Scan(&stock.ID, &stock.CreatedAt, &stock.UpdatedAt)
}

// Update updates an existing paper stock.
func (r *PaperStockRepository) Update(stock *models.PaperStock) error {
	query := `UPDATE paper_stocks
              SET name = $1, display_name = $2, weight = $3, is_active = $4, sort_order = $5, updated_at = NOW()
              WHERE id = $6
              RETURNING updated_at`

	return r.db.QueryRowx(query,
		stock.Name,
		stock.DisplayName,
		stock.Weight,
		stock.IsActive,
		stock.SortOrder,
		stock.ID,
	).Scan(&stock.UpdatedAt)
}

// GetAllExceptions returns every paper exception row. The pricing path
// fetches the full set once per request; absence of a row for a stock
// means the default multiplier.
func (r *PaperStockRepository) GetAllExceptions() ([]models.PaperException, error) {
	const q = `SELECT * FROM paper_exceptions ORDER BY paper_stock_id`
	var exceptions []models.PaperException
	if err := r.db.Select(&exceptions, q); err != nil {
		return nil, err
	}
	return exceptions, nil
}

// UpsertException inserts or updates the exception row for a paper stock.
func (r *PaperStockRepository) UpsertException(e *models.PaperException) error {
	const q = `
        INSERT INTO paper_exceptions (paper_stock_id, exception_type, double_sided_multiplier)
        VALUES ($1, $2, $3)
        ON CONFLICT (paper_stock_id) DO UPDATE SET
            exception_type = EXCLUDED.exception_type,
            double_sided_multiplier = EXCLUDED.double_sided_multiplier,
            updated_at = NOW()`

	_, err := r.db.Exec(q, e.PaperStockID, e.ExceptionType, e.DoubleSidedMultiplier)
	return err
}

// DeleteException removes the exception row for a paper stock, restoring
// default cardstock behavior.
func (r *PaperStockRepository) DeleteException(paperStockID int) error {
	const q = `DELETE FROM paper_exceptions WHERE paper_stock_id = $1`
	_, err := r.db.Exec(q, paperStockID)
	return err
}
