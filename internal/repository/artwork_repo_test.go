package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// An artwork row whose upload to storage failed has an empty file_key and
// must never reach the scan worker, or it would be retried forever against
// a nonexistent object.
func TestPendingArtworksExcludeMissingFiles(t *testing.T) {
	assert.Contains(t, pendingArtworksQuery, `status = 'pending'`)
	assert.Contains(t, pendingArtworksQuery, `file_key <> ''`)
}
