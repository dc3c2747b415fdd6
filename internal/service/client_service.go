package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/printdeck/printdeck_api/internal/models"
	"github.com/printdeck/printdeck_api/internal/repository"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// ClientService manages storefront API clients and their keys.
type ClientService struct {
	clientRepo *repository.ClientRepository
}

func NewClientService(clientRepo *repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientRequest registers a new storefront client.
type CreateClientRequest struct {
	Name        string   `json:"name" binding:"required"`
	IPWhitelist []string `json:"ipWhitelist"`
}

// CreateClient registers a client and issues its live and sandbox keys.
func (s *ClientService) CreateClient(req *CreateClientRequest) (*models.Client, error) {
	apiKey, err := utils.GenerateLiveKey()
	if err != nil {
		return nil, err
	}
	sandboxKey, err := utils.GenerateSandboxKey()
	if err != nil {
		return nil, err
	}

	client := &models.Client{
		ClientID:    generateClientID(req.Name),
		Name:        req.Name,
		APIKey:      apiKey,
		SandboxKey:  sandboxKey,
		IPWhitelist: req.IPWhitelist,
		IsActive:    true,
	}
	if err := s.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient returns a client by numeric id.
func (s *ClientService) GetClient(id int) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrInvalidClient
		}
		return nil, err
	}
	return client, nil
}

// ListClients returns all registered clients.
func (s *ClientService) ListClients() ([]models.Client, error) {
	return s.clientRepo.List()
}

// UpdateClientRequest applies a partial update to a client.
type UpdateClientRequest struct {
	Name        string   `json:"name"`
	IPWhitelist []string `json:"ipWhitelist"`
	IsActive    *bool    `json:"isActive"`
}

func (s *ClientService) UpdateClient(id int, req *UpdateClientRequest) (*models.Client, error) {
	client, err := s.GetClient(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		client.Name = req.Name
	}
	if req.IPWhitelist != nil {
		client.IPWhitelist = req.IPWhitelist
	}
	if req.IsActive != nil {
		client.IsActive = *req.IsActive
	}

	if err := s.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

// RotateKeys issues fresh live and sandbox keys, revoking the old ones.
func (s *ClientService) RotateKeys(id int) (*models.Client, error) {
	client, err := s.GetClient(id)
	if err != nil {
		return nil, err
	}

	apiKey, err := utils.GenerateLiveKey()
	if err != nil {
		return nil, err
	}
	sandboxKey, err := utils.GenerateSandboxKey()
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.UpdateKeys(id, apiKey, sandboxKey); err != nil {
		return nil, err
	}
	client.APIKey = apiKey
	client.SandboxKey = sandboxKey
	return client, nil
}

// generateClientID derives a stable public identifier from the client
// name plus a random suffix, e.g. "acme-prints-3f9a21".
func generateClientID(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "client"
	}
	return fmt.Sprintf("%s-%s", slug, uuid.New().String()[:6])
}
