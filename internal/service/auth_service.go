package service

import (
	"database/sql"
	"net"
	"strings"

	"github.com/printdeck/printdeck_api/internal/models"
	"github.com/printdeck/printdeck_api/internal/repository"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// AuthService provides methods for authenticating and authorizing
// storefront clients.
type AuthService struct {
	clientRepo *repository.ClientRepository
}

// NewAuthService constructs a new AuthService.
func NewAuthService(clientRepo *repository.ClientRepository) *AuthService {
	return &AuthService{clientRepo: clientRepo}
}

// ValidateAPIKey verifies the provided token against live and sandbox keys.
// Returns the client, a boolean indicating sandbox mode, or an error.
func (s *AuthService) ValidateAPIKey(token string) (*models.Client, bool, error) {
	if token == "" {
		return nil, false, utils.ErrInvalidToken
	}

	// The key prefix tells us which column to check first.
	if strings.HasPrefix(token, "pd_sandbox_") {
		if c, err := s.clientRepo.GetBySandboxKey(token); err == nil && c != nil {
			return c, true, nil
		} else if err != nil && err != sql.ErrNoRows {
			return nil, false, err
		}
		return nil, false, utils.ErrInvalidToken
	}

	if c, err := s.clientRepo.GetByAPIKey(token); err == nil && c != nil {
		return c, false, nil
	} else if err != nil && err != sql.ErrNoRows {
		return nil, false, err
	}
	return nil, false, utils.ErrInvalidToken
}

// ValidateClientID checks if the provided clientID matches the client's registered ID.
func (s *AuthService) ValidateClientID(client *models.Client, clientID string) bool {
	if client == nil {
		return false
	}
	return client.ClientID == clientID
}

// IsIPAllowed returns true if the provided IP matches the client's
// whitelist. Entries may be plain addresses or CIDR ranges; an empty
// whitelist allows all sources.
func (s *AuthService) IsIPAllowed(client *models.Client, ip string) bool {
	if client == nil {
		return false
	}
	if len(client.IPWhitelist) == 0 {
		return true
	}

	parsed := net.ParseIP(ip)
	for _, allowed := range client.IPWhitelist {
		if allowed == ip {
			return true
		}
		if parsed != nil && strings.Contains(allowed, "/") {
			if _, cidr, err := net.ParseCIDR(allowed); err == nil && cidr.Contains(parsed) {
				return true
			}
		}
	}
	return false
}
