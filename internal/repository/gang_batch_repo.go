package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/printdeck/printdeck_api/internal/models"
)

// GangBatchRepository handles data access for gang-run production batches.
type GangBatchRepository struct {
	db *sqlx.DB
}

// NewGangBatchRepository creates a new GangBatchRepository.
func NewGangBatchRepository(db *sqlx.DB) *GangBatchRepository {
	return &GangBatchRepository{db: db}
}

// Create inserts a new open batch.
func (r *GangBatchRepository) Create(batch *models.GangBatch) error {
	const q = `INSERT INTO gang_batches (batch_number, paper_stock_id, size_name, total_quantity, status)
               VALUES ($1, $2, $3, $4, $5)
               RETURNING id, created_at`
	return r.db.QueryRowx(q,
		batch.BatchNumber,
		batch.PaperStockID,
		batch.SizeName,
		batch.TotalQuantity,
		batch.Status,
	).Scan(&batch.ID, &batch.CreatedAt)
}

// GetOpen returns batches not yet submitted to the facility.
func (r *GangBatchRepository) GetOpen() ([]models.GangBatch, error) {
	const q = `SELECT * FROM gang_batches WHERE status = 'open' ORDER BY created_at`
	var batches []models.GangBatch
	if err := r.db.Select(&batches, q); err != nil {
		return nil, err
	}
	return batches, nil
}

// MarkSubmitted records a successful facility submission.
func (r *GangBatchRepository) MarkSubmitted(id int, pressroomRef string) error {
	const q = `UPDATE gang_batches
               SET status = 'submitted', pressroom_ref = $2, submitted_at = NOW()
               WHERE id = $1`
	_, err := r.db.Exec(q, id, pressroomRef)
	return err
}

// UpdateStatus transitions a batch to a new status.
func (r *GangBatchRepository) UpdateStatus(id int, status models.GangBatchStatus) error {
	const q = `UPDATE gang_batches SET status = $2 WHERE id = $1`
	_, err := r.db.Exec(q, id, status)
	return err
}

// List returns batches for the admin panel, newest first.
func (r *GangBatchRepository) List(limit int) ([]models.GangBatch, error) {
	if limit <= 0 {
		limit = 50
	}
	const q = `SELECT * FROM gang_batches ORDER BY created_at DESC LIMIT $1`
	var batches []models.GangBatch
	if err := r.db.Select(&batches, q, limit); err != nil {
		return nil, err
	}
	return batches, nil
}
