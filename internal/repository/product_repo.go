package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/printdeck/printdeck_api/internal/models"
)

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetAllPaged returns active products with filters and pagination and also
// returns total count. Filters: category (exact), search (ILIKE on name).
// If a filter is empty it will be ignored. Page begins at 1.
func (r *ProductRepository) GetAllPaged(category, search string, page, limit int) ([]models.Product, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	offset := (page - 1) * limit

	const baseWhere = `WHERE ($1 = '' OR category = $1)
        AND ($2 = '' OR name ILIKE '%%' || $2 || '%%')
        AND is_active = true`

	countQuery := `SELECT COUNT(1) FROM products ` + baseWhere
	var total int
	if err := r.db.Get(&total, countQuery, category, search); err != nil {
		return nil, 0, err
	}

	listQuery := `SELECT * FROM products ` + baseWhere + `
        ORDER BY category, name LIMIT $3 OFFSET $4`
	var products []models.Product
	if err := r.db.Select(&products, listQuery, category, search, limit, offset); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetBySlug returns a single active product by slug.
func (r *ProductRepository) GetBySlug(slug string) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE slug = $1 LIMIT 1`
	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var p models.Product
	if err := stmt.Get(&p, slug); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID returns a single product by id.
func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE id = $1 LIMIT 1`
	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var p models.Product
	if err := stmt.Get(&p, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &p, nil
}

// Create creates a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	query := `INSERT INTO products (slug, name, category, description, base_rate, setup_fee, quantity_group_id, gang_run_eligible, is_active)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
              RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(query,
		product.Slug,
		product.Name,
		product.Category,
		product.Description,
		product.BaseRate,
		product.SetupFee,
		product.QuantityGroupID,
		product.GangRunEligible,
		product.IsActive,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

// Update updates an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	query := `UPDATE products
              SET slug = $1, name = $2, category = $3, description = $4,
                  base_rate = $5, setup_fee = $6, quantity_group_id = $7,
                  gang_run_eligible = $8, is_active = $9, updated_at = NOW()
              WHERE id = $10
              RETURNING updated_at`

	return r.db.QueryRowx(query,
		product.Slug,
		product.Name,
		product.Category,
		product.Description,
		product.BaseRate,
		product.SetupFee,
		product.QuantityGroupID,
		product.GangRunEligible,
		product.IsActive,
		product.ID,
	).Scan(&product.UpdatedAt)
}

// UpdateStatus sets the active flag of a product.
func (r *ProductRepository) UpdateStatus(id int, isActive bool) error {
	const q = `UPDATE products SET is_active = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(q, id, isActive)
	return err
}

// Delete deletes a product by ID.
func (r *ProductRepository) Delete(id int) error {
	query := `DELETE FROM products WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

// AdminProductFilter holds filters for admin product queries.
type AdminProductFilter struct {
	Category string
	Search   string
	IsActive *bool
	Page     int
	Limit    int
}

// AdminProductResult contains paginated product results for admin.
type AdminProductResult struct {
	Products   []models.Product
	TotalItems int
	TotalPages int
	Page       int
	Limit      int
}

// GetAllAdmin returns all products for admin with filters and pagination (includes inactive).
func (r *ProductRepository) GetAllAdmin(filter *AdminProductFilter) (*AdminProductResult, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	offset := (filter.Page - 1) * filter.Limit

	// Build dynamic WHERE clause
	baseWhere := `WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Category != "" {
		baseWhere += fmt.Sprintf(" AND category ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Category+"%")
		argIdx++
	}
	if filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (name ILIKE $%d OR slug ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.IsActive != nil {
		baseWhere += fmt.Sprintf(" AND is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	countQuery := `SELECT COUNT(1) FROM products ` + baseWhere
	var total int
	if err := r.db.Get(&total, countQuery, args...); err != nil {
		return nil, err
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit

	listQuery := fmt.Sprintf(`SELECT * FROM products %s
        ORDER BY category, name LIMIT $%d OFFSET $%d`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	var products []models.Product
	if err := r.db.Select(&products, listQuery, args...); err != nil {
		return nil, err
	}

	return &AdminProductResult{
		Products:   products,
		TotalItems: total,
		TotalPages: totalPages,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// GetDistinctCategories returns all distinct categories.
func (r *ProductRepository) GetDistinctCategories() ([]string, error) {
	const q = `SELECT DISTINCT category FROM products WHERE category != '' ORDER BY category`
	var categories []string
	if err := r.db.Select(&categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}
