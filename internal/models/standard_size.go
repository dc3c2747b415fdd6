package models

import "time"

// StandardSize is an immutable catalog entry for a predefined print size.
// PreCalculatedValue is the area in square inches computed at seed time;
// pricing always uses it directly instead of recomputing width*height so
// every call site sees the same number.
type StandardSize struct {
	ID                 int       `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	DisplayName        string    `db:"display_name" json:"displayName"`
	Width              float64   `db:"width" json:"width"`
	Height             float64   `db:"height" json:"height"`
	PreCalculatedValue float64   `db:"pre_calculated_value" json:"preCalculatedValue"`
	SortOrder          int       `db:"sort_order" json:"sortOrder"`
	CreatedAt          time.Time `db:"created_at" json:"-"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}
