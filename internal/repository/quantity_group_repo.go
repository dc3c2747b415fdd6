package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/printdeck/printdeck_api/internal/models"
)

// QuantityGroupRepository handles data access for quantity groups.
type QuantityGroupRepository struct {
	db *sqlx.DB
}

// NewQuantityGroupRepository creates a new QuantityGroupRepository.
func NewQuantityGroupRepository(db *sqlx.DB) *QuantityGroupRepository {
	return &QuantityGroupRepository{db: db}
}

// GetAll returns all quantity groups in display order.
func (r *QuantityGroupRepository) GetAll() ([]models.QuantityGroup, error) {
	const q = `SELECT * FROM quantity_groups ORDER BY sort_order, name`
	var groups []models.QuantityGroup
	if err := r.db.Select(&groups, q); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetByID returns a single quantity group by id.
func (r *QuantityGroupRepository) GetByID(id int) (*models.QuantityGroup, error) {
	const q = `SELECT * FROM quantity_groups WHERE id = $1 LIMIT 1`
	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var g models.QuantityGroup
	if err := stmt.Get(&g, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &g, nil
}

// The values column is a reserved word in PostgreSQL and must stay quoted
// wherever a statement names it.
const (
	quantityGroupInsert = `INSERT INTO quantity_groups (name, "values", default_value, custom_min, custom_max, sort_order)
              VALUES ($1, $2, $3, $4, $5, $6)
              RETURNING id, created_at, updated_at`

	quantityGroupUpdate = `UPDATE quantity_groups
              SET name = $1, "values" = $2, default_value = $3,
                  custom_min = $4, custom_max = $5, sort_order = $6, updated_at = NOW()
              WHERE id = $7
              RETURNING updated_at`
)

// Create creates a new quantity group.
func (r *QuantityGroupRepository) Create(group *models.QuantityGroup) error {
	return r.db.QueryRowx(quantityGroupInsert,
		group.Name,
		group.Values,
		group.DefaultValue,
		group.CustomMin,
		group.CustomMax,
		group.SortOrder,
	).Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
}

// Update updates an existing quantity group.
func (r *QuantityGroupRepository) Update(group *models.QuantityGroup) error {
	return r.db.QueryRowx(quantityGroupUpdate,
		group.Name,
		group.Values,
		group.DefaultValue,
		group.CustomMin,
		group.CustomMax,
		group.SortOrder,
		group.ID,
	).Scan(&group.UpdatedAt)
}

// Delete deletes a quantity group by ID.
func (r *QuantityGroupRepository) Delete(id int) error {
	query := `DELETE FROM quantity_groups WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}
