package handler

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/printdeck/printdeck_api/internal/middleware"
	"github.com/printdeck/printdeck_api/internal/service"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// ArtworkHandler handles artwork upload and status endpoints.
type ArtworkHandler struct {
	artworkService *service.ArtworkService
}

// NewArtworkHandler constructs an ArtworkHandler.
func NewArtworkHandler(artworkService *service.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{artworkService: artworkService}
}

// Upload accepts a multipart artwork file and stores it pending moderation.
func (h *ArtworkHandler) Upload(c *gin.Context) {
	client := middleware.GetClient(c)
	if client == nil {
		utils.Error(c, 401, "UNAUTHORIZED", "Missing client context")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Missing artwork file")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Unreadable artwork file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to read artwork file")
		return
	}

	artwork, err := h.artworkService.Upload(c.Request.Context(), client.ID, client.ClientID, fileHeader.Filename, data)
	if err != nil {
		utils.Error(c, 422, "UPLOAD_FAILED", err.Error())
		return
	}

	utils.Success(c, 201, "Artwork uploaded successfully", artwork)
}

// GetArtwork returns the moderation status of an uploaded artwork.
func (h *ArtworkHandler) GetArtwork(c *gin.Context) {
	client := middleware.GetClient(c)
	if client == nil {
		utils.Error(c, 401, "UNAUTHORIZED", "Missing client context")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid artwork id")
		return
	}

	artwork, err := h.artworkService.Get(client.ID, id)
	if err != nil {
		if err == utils.ErrArtworkNotFound {
			utils.Error(c, 404, "ARTWORK_NOT_FOUND", "Artwork not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get artwork")
		return
	}

	utils.Success(c, 200, "Artwork retrieved successfully", artwork)
}

// Download returns a signed, short-lived URL for an approved artwork file.
func (h *ArtworkHandler) Download(c *gin.Context) {
	client := middleware.GetClient(c)
	if client == nil {
		utils.Error(c, 401, "UNAUTHORIZED", "Missing client context")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid artwork id")
		return
	}

	url, err := h.artworkService.DownloadURL(client.ID, id)
	if err != nil {
		switch err {
		case utils.ErrArtworkNotFound:
			utils.Error(c, 404, "ARTWORK_NOT_FOUND", "Artwork not found")
		case utils.ErrArtworkNotApproved:
			utils.Error(c, 409, "ARTWORK_NOT_APPROVED", "Artwork has not been approved yet")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create download URL")
		}
		return
	}

	utils.Success(c, 200, "Download URL created", gin.H{"url": url})
}
