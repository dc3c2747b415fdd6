package models

import "time"

// GangBatchStatus enumerates the gang batch lifecycle states.
type GangBatchStatus string

const (
	GangBatchStatusOpen      GangBatchStatus = "open"
	GangBatchStatusSubmitted GangBatchStatus = "submitted"
	GangBatchStatusAccepted  GangBatchStatus = "accepted"
	GangBatchStatusRejected  GangBatchStatus = "rejected"
)

// GangBatch groups paid order items that share paper stock and size into
// one press run. Production batches runs in multiples of 5000 above that
// threshold, which is why custom quantities over 5000 must be exact
// multiples of 5000.
type GangBatch struct {
	ID            int             `db:"id" json:"id"`
	BatchNumber   string          `db:"batch_number" json:"batchNumber"`
	PaperStockID  int             `db:"paper_stock_id" json:"paperStockId"`
	SizeName      string          `db:"size_name" json:"sizeName"`
	TotalQuantity int             `db:"total_quantity" json:"totalQuantity"`
	Status        GangBatchStatus `db:"status" json:"status"`
	PressroomRef  *string         `db:"pressroom_ref" json:"pressroomRef,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
	SubmittedAt   *time.Time      `db:"submitted_at" json:"submittedAt,omitempty"`
}
