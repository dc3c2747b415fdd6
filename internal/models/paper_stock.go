package models

import "time"

// PaperExceptionType enumerates paper stock exception categories.
type PaperExceptionType string

const (
	// ExceptionTextPaper marks lighter text-weight papers that incur a
	// double-sided print multiplier cardstock does not.
	ExceptionTextPaper PaperExceptionType = "TEXT_PAPER"
)

// PaperStock represents an orderable paper option.
type PaperStock struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	DisplayName string    `db:"display_name" json:"displayName"`
	Weight      string    `db:"weight" json:"weight"` // e.g. "14pt", "100lb"
	IsActive    bool      `db:"is_active" json:"isActive"`
	SortOrder   int       `db:"sort_order" json:"sortOrder"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// PaperException maps a paper stock to a pricing exception. Absence of a
// row for a stock means the default double-sided multiplier of 1.0.
type PaperException struct {
	ID                    int                `db:"id" json:"id"`
	PaperStockID          int                `db:"paper_stock_id" json:"paperStockId"`
	ExceptionType         PaperExceptionType `db:"exception_type" json:"exceptionType"`
	DoubleSidedMultiplier float64            `db:"double_sided_multiplier" json:"doubleSidedMultiplier"`
	CreatedAt             time.Time          `db:"created_at" json:"-"`
	UpdatedAt             time.Time          `db:"updated_at" json:"updatedAt"`
}
