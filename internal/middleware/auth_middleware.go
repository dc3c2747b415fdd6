package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/printdeck/printdeck_api/internal/models"
	"github.com/printdeck/printdeck_api/internal/service"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// AuthMiddleware handles API key authentication, client validation, and IP checks.
type AuthMiddleware struct {
	authService *service.AuthService
	rateLimiter *InvalidAuthRateLimiter
}

// NewAuthMiddleware constructs a new AuthMiddleware.
func NewAuthMiddleware(authService *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		rateLimiter: NewInvalidAuthRateLimiter(),
	}
}

// Handle returns a Gin middleware function that enforces authentication.
func (m *AuthMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			m.handleAuthError(c, "INVALID_TOKEN", "Missing or invalid authorization header")
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		// Sandbox keys resolve the same client but flag the request so
		// orders created with them never reach production.
		client, isSandbox, err := m.authService.ValidateAPIKey(token)
		if err != nil || client == nil {
			m.handleAuthError(c, "INVALID_TOKEN", "Invalid API key")
			return
		}

		if !client.IsActive {
			m.handleAuthError(c, "INVALID_CLIENT", "Client is not active")
			return
		}

		clientID := c.GetHeader("X-Client-Id")
		if !m.authService.ValidateClientID(client, clientID) {
			m.handleAuthError(c, "INVALID_CLIENT", "Client ID mismatch")
			return
		}

		if !m.authService.IsIPAllowed(client, c.ClientIP()) {
			m.handleAuthError(c, "INVALID_IP", "Request from unauthorized IP address")
			return
		}

		c.Set("client", client)
		c.Set("is_sandbox", isSandbox)
		c.Set("client_id", client.ID)

		c.Next()
	}
}

func (m *AuthMiddleware) handleAuthError(c *gin.Context, code, message string) {
	// Apply rate limit for invalid auth attempts
	ip := c.ClientIP()
	if !m.rateLimiter.Allow(ip) {
		utils.Error(c, 429, "TOO_MANY_REQUESTS", "Too many invalid authentication attempts")
		c.Abort()
		return
	}

	utils.Error(c, 401, code, message)
	c.Abort()
}

// GetClient returns the authenticated client from context.
func GetClient(c *gin.Context) *models.Client {
	client, _ := c.Get("client")
	if client == nil {
		return nil
	}
	return client.(*models.Client)
}

// IsSandbox indicates whether the request is in sandbox mode.
func IsSandbox(c *gin.Context) bool {
	isSandbox, _ := c.Get("is_sandbox")
	if isSandbox == nil {
		return false
	}
	return isSandbox.(bool)
}
