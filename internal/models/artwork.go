package models

import "time"

// ArtworkStatus enumerates the moderation states of an uploaded file.
type ArtworkStatus string

const (
	ArtworkStatusPending  ArtworkStatus = "pending"
	ArtworkStatusApproved ArtworkStatus = "approved"
	ArtworkStatusRejected ArtworkStatus = "rejected"
)

// Artwork represents a customer-uploaded print file stored in S3.
// Moderation runs asynchronously after upload; orders can reference an
// artwork before it is approved but production requires approval.
type Artwork struct {
	ID          int           `db:"id" json:"id"`
	ClientID    int           `db:"client_id" json:"-"`
	FileKey     string        `db:"file_key" json:"fileKey"`
	FileName    string        `db:"file_name" json:"fileName"`
	ContentType string        `db:"content_type" json:"contentType"`
	SizeBytes   int64         `db:"size_bytes" json:"sizeBytes"`
	Status      ArtworkStatus `db:"status" json:"status"`
	// RejectReason holds the highest-confidence moderation label when rejected.
	RejectReason string    `db:"reject_reason" json:"rejectReason,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
