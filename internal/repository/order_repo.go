package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/printdeck/printdeck_api/internal/models"
)

// OrderRepository handles data access for orders and order items.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts an order and its items in one transaction.
func (r *OrderRepository) Create(order *models.Order) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const orderQ = `INSERT INTO orders (order_number, client_id, customer_email, status, total_price)
                    VALUES ($1, $2, $3, $4, $5)
                    RETURNING id, created_at, updated_at`
	if err := tx.QueryRowx(orderQ,
		order.OrderNumber,
		order.ClientID,
		order.CustomerEmail,
		order.Status,
		order.TotalPrice,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	const itemQ = `INSERT INTO order_items
        (order_id, product_id, size_name, width, height, quantity, is_custom_qty,
         paper_stock_id, sides, unit_price, line_price, artwork_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at`
	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRowx(itemQ,
			item.OrderID,
			item.ProductID,
			item.SizeName,
			item.Width,
			item.Height,
			item.Quantity,
			item.IsCustomQty,
			item.PaperStockID,
			item.Sides,
			item.UnitPrice,
			item.LinePrice,
			item.ArtworkID,
		).Scan(&item.ID, &item.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByNumber returns an order with its items by public order number,
// scoped to the owning client.
func (r *OrderRepository) GetByNumber(clientID int, orderNumber string) (*models.Order, error) {
	const q = `SELECT * FROM orders WHERE client_id = $1 AND order_number = $2 LIMIT 1`
	var order models.Order
	if err := r.db.Get(&order, q, clientID, orderNumber); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}

	const itemsQ = `SELECT * FROM order_items WHERE order_id = $1 ORDER BY id`
	if err := r.db.Select(&order.Items, itemsQ, order.ID); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByID returns an order with its items by internal id.
func (r *OrderRepository) GetByID(id int) (*models.Order, error) {
	const q = `SELECT * FROM orders WHERE id = $1 LIMIT 1`
	var order models.Order
	if err := r.db.Get(&order, q, id); err != nil {
		return nil, err
	}
	const itemsQ = `SELECT * FROM order_items WHERE order_id = $1 ORDER BY id`
	if err := r.db.Select(&order.Items, itemsQ, order.ID); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus transitions an order to a new status.
func (r *OrderRepository) UpdateStatus(id int, status models.OrderStatus) error {
	const q = `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(q, id, status)
	return err
}

// GetBatchableItems returns paid, gang-run-eligible order items without a
// batch assignment, grouped consistently for the batch worker.
func (r *OrderRepository) GetBatchableItems() ([]models.OrderItem, error) {
	const q = `
        SELECT oi.* FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        JOIN products p ON p.id = oi.product_id
        WHERE o.status = 'paid'
          AND p.gang_run_eligible = true
          AND oi.gang_batch_id IS NULL
          AND oi.size_name != ''
        ORDER BY oi.paper_stock_id, oi.size_name, oi.id`
	var items []models.OrderItem
	if err := r.db.Select(&items, q); err != nil {
		return nil, err
	}
	return items, nil
}

// AssignBatch links order items to a gang batch.
func (r *OrderRepository) AssignBatch(itemIDs []int, batchID int) error {
	if len(itemIDs) == 0 {
		return nil
	}
	q, args, err := sqlx.In(`UPDATE order_items SET gang_batch_id = ? WHERE id IN (?)`, batchID, itemIDs)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(r.db.Rebind(q), args...)
	return err
}

// AdminOrderFilter holds filters for admin order queries.
type AdminOrderFilter struct {
	Status string
	Search string // matches order number or customer email
	Page   int
	Limit  int
}

// ListAdmin returns orders for the admin panel with pagination.
func (r *OrderRepository) ListAdmin(filter *AdminOrderFilter) ([]models.Order, int, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	offset := (filter.Page - 1) * filter.Limit

	baseWhere := `WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (order_number ILIKE $%d OR customer_email ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM orders `+baseWhere, args...); err != nil {
		return nil, 0, err
	}

	listQuery := fmt.Sprintf(`SELECT * FROM orders %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	var orders []models.Order
	if err := r.db.Select(&orders, listQuery, args...); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// OrderStats summarizes order counts and revenue by status.
type OrderStats struct {
	Status  string `db:"status" json:"status"`
	Count   int    `db:"count" json:"count"`
	Revenue int    `db:"revenue" json:"revenue"`
}

// GetStats returns per-status order counts and revenue.
func (r *OrderRepository) GetStats() ([]OrderStats, error) {
	const q = `SELECT status, COUNT(1) AS count, COALESCE(SUM(total_price), 0) AS revenue
               FROM orders GROUP BY status ORDER BY status`
	var stats []OrderStats
	if err := r.db.Select(&stats, q); err != nil {
		return nil, err
	}
	return stats, nil
}
