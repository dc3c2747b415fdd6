package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/printdeck/printdeck_api/internal/service"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// ClientHandler manages storefront API clients (admin only).
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler constructs a ClientHandler.
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClient registers a client and returns its freshly issued keys.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req service.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	client, err := h.clientService.CreateClient(&req)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create client")
		return
	}
	utils.Success(c, 201, "Client created successfully", client)
}

// ListClients returns all registered clients without their keys.
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.ListClients()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to list clients")
		return
	}

	for i := range clients {
		clients[i].APIKey = ""
		clients[i].SandboxKey = ""
	}
	utils.Success(c, 200, "Clients retrieved successfully", gin.H{"clients": clients})
}

// UpdateClient applies a partial update to a client.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid client id")
		return
	}

	var req service.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	client, err := h.clientService.UpdateClient(id, &req)
	if err != nil {
		if err == utils.ErrInvalidClient {
			utils.Error(c, 404, "CLIENT_NOT_FOUND", "Client not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update client")
		return
	}

	client.APIKey = ""
	client.SandboxKey = ""
	utils.Success(c, 200, "Client updated successfully", client)
}

// RotateKeys issues new live and sandbox keys for a client.
func (h *ClientHandler) RotateKeys(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid client id")
		return
	}

	client, err := h.clientService.RotateKeys(id)
	if err != nil {
		if err == utils.ErrInvalidClient {
			utils.Error(c, 404, "CLIENT_NOT_FOUND", "Client not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to rotate keys")
		return
	}
	utils.Success(c, 200, "Keys rotated successfully", client)
}
