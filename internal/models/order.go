package models

import "time"

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "pending"
	OrderStatusPaid         OrderStatus = "paid"
	OrderStatusBatched      OrderStatus = "batched"
	OrderStatusInProduction OrderStatus = "in_production"
	OrderStatusShipped      OrderStatus = "shipped"
	OrderStatusCancelled    OrderStatus = "cancelled"
)

// Order represents a customer order placed through the storefront API.
type Order struct {
	ID            int         `db:"id" json:"id"`
	OrderNumber   string      `db:"order_number" json:"orderNumber"`
	ClientID      int         `db:"client_id" json:"-"`
	CustomerEmail string      `db:"customer_email" json:"customerEmail"`
	Status        OrderStatus `db:"status" json:"status"`
	TotalPrice    int         `db:"total_price" json:"totalPrice"` // cents
	CreatedAt     time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updatedAt"`

	Items []OrderItem `db:"-" json:"items,omitempty"`
}

// OrderItem is one priced line of an order. Size and quantity record the
// resolved selection: either a standard catalog entry or a validated
// custom value.
type OrderItem struct {
	ID      int `db:"id" json:"id"`
	OrderID int `db:"order_id" json:"-"`

	ProductID    int     `db:"product_id" json:"productId"`
	SizeName     string  `db:"size_name" json:"sizeName"` // empty for custom sizes
	Width        float64 `db:"width" json:"width"`
	Height       float64 `db:"height" json:"height"`
	Quantity     int     `db:"quantity" json:"quantity"`
	IsCustomQty  bool    `db:"is_custom_qty" json:"isCustomQuantity"`
	PaperStockID int     `db:"paper_stock_id" json:"paperStockId"`
	Sides        int     `db:"sides" json:"sides"` // 1 or 2

	UnitPrice int `db:"unit_price" json:"unitPrice"` // cents per unit
	LinePrice int `db:"line_price" json:"linePrice"` // cents

	ArtworkID   *int      `db:"artwork_id" json:"artworkId,omitempty"`
	GangBatchID *int      `db:"gang_batch_id" json:"gangBatchId,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
}
