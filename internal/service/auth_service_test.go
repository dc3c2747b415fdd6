package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/printdeck/printdeck_api/internal/models"
)

func TestValidateClientID(t *testing.T) {
	svc := NewAuthService(nil)
	client := &models.Client{ClientID: "acme-prints-3f9a21"}

	assert.True(t, svc.ValidateClientID(client, "acme-prints-3f9a21"))
	assert.False(t, svc.ValidateClientID(client, "other-store"))
	assert.False(t, svc.ValidateClientID(nil, "acme-prints-3f9a21"))
}

func TestIsIPAllowed(t *testing.T) {
	svc := NewAuthService(nil)

	t.Run("empty whitelist allows all", func(t *testing.T) {
		client := &models.Client{}
		assert.True(t, svc.IsIPAllowed(client, "203.0.113.10"))
	})

	t.Run("exact match", func(t *testing.T) {
		client := &models.Client{IPWhitelist: []string{"203.0.113.10"}}
		assert.True(t, svc.IsIPAllowed(client, "203.0.113.10"))
		assert.False(t, svc.IsIPAllowed(client, "203.0.113.11"))
	})

	t.Run("cidr range", func(t *testing.T) {
		client := &models.Client{IPWhitelist: []string{"10.1.0.0/16"}}
		assert.True(t, svc.IsIPAllowed(client, "10.1.42.7"))
		assert.False(t, svc.IsIPAllowed(client, "10.2.0.1"))
	})

	t.Run("nil client denied", func(t *testing.T) {
		assert.False(t, svc.IsIPAllowed(nil, "203.0.113.10"))
	})
}

func TestGenerateClientID(t *testing.T) {
	id := generateClientID("Acme Prints")
	assert.Regexp(t, `^acme-prints-[0-9a-f]{6}$`, id)

	// Non-alphanumeric names fall back to a generic slug.
	id = generateClientID("!!!")
	assert.Regexp(t, `^client-[0-9a-f]{6}$`, id)
}
