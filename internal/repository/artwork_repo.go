package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/printdeck/printdeck_api/internal/models"
)

// ArtworkRepository handles data access for uploaded artwork files.
type ArtworkRepository struct {
	db *sqlx.DB
}

// NewArtworkRepository creates a new ArtworkRepository.
func NewArtworkRepository(db *sqlx.DB) *ArtworkRepository {
	return &ArtworkRepository{db: db}
}

// Create inserts a new artwork row in pending status.
func (r *ArtworkRepository) Create(a *models.Artwork) error {
	const q = `INSERT INTO artworks (client_id, file_key, file_name, content_type, size_bytes, status)
               VALUES ($1, $2, $3, $4, $5, $6)
               RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(q,
		a.ClientID,
		a.FileKey,
		a.FileName,
		a.ContentType,
		a.SizeBytes,
		a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// GetByID returns an artwork scoped to the owning client.
func (r *ArtworkRepository) GetByID(clientID, id int) (*models.Artwork, error) {
	const q = `SELECT * FROM artworks WHERE id = $1 AND client_id = $2 LIMIT 1`
	var a models.Artwork
	if err := r.db.Get(&a, q, id, clientID); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &a, nil
}

// Rows without a file key never made it to storage and cannot be scanned.
const pendingArtworksQuery = `SELECT * FROM artworks WHERE status = 'pending' AND file_key <> '' ORDER BY created_at LIMIT $1`

// GetPending returns artworks awaiting moderation, oldest first.
func (r *ArtworkRepository) GetPending(limit int) ([]models.Artwork, error) {
	if limit <= 0 {
		limit = 20
	}
	var artworks []models.Artwork
	if err := r.db.Select(&artworks, pendingArtworksQuery, limit); err != nil {
		return nil, err
	}
	return artworks, nil
}

// IsApproved reports whether an artwork passed moderation. Used by the
// batch worker, which is not scoped to a client.
func (r *ArtworkRepository) IsApproved(id int) (bool, error) {
	var status models.ArtworkStatus
	if err := r.db.Get(&status, `SELECT status FROM artworks WHERE id = $1`, id); err != nil {
		return false, err
	}
	return status == models.ArtworkStatusApproved, nil
}

// Delete removes an artwork row. Used to roll back a record whose file
// never reached storage.
func (r *ArtworkRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM artworks WHERE id = $1`, id)
	return err
}

// SetFileKey stores the S3 key once the upload completes.
func (r *ArtworkRepository) SetFileKey(id int, fileKey string) error {
	const q = `UPDATE artworks SET file_key = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(q, id, fileKey)
	return err
}

// UpdateStatus records the moderation outcome.
func (r *ArtworkRepository) UpdateStatus(id int, status models.ArtworkStatus, rejectReason string) error {
	const q = `UPDATE artworks SET status = $2, reject_reason = $3, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(q, id, status, rejectReason)
	return err
}
