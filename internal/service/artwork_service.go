package service

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/rs/zerolog/log"

	cfg "github.com/printdeck/printdeck_api/internal/config"
	"github.com/printdeck/printdeck_api/internal/models"
	"github.com/printdeck/printdeck_api/internal/repository"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// moderationMinConfidence is the Rekognition confidence above which a
// moderation label rejects an artwork.
const moderationMinConfidence = 80.0

// maxArtworkBytes caps upload size at 25 MB.
const maxArtworkBytes = 25 << 20

// ArtworkService stores customer print files and moderates raster
// uploads through AWS Rekognition. Uploads land in pending status; the
// scan worker moves them to approved or rejected.
type ArtworkService struct {
	artworkRepo       *repository.ArtworkRepository
	s3                *S3Service
	rekognitionClient *rekognition.Client
}

func NewArtworkService(
	artworkRepo *repository.ArtworkRepository,
	s3 *S3Service,
	apiCfg *cfg.Config,
) *ArtworkService {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(apiCfg.AWS.RekognitionRegion),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load AWS SDK config")
	}

	return &ArtworkService{
		artworkRepo:       artworkRepo,
		s3:                s3,
		rekognitionClient: rekognition.NewFromConfig(awsCfg),
	}
}

// Upload stores an artwork file and records it as pending moderation.
func (s *ArtworkService) Upload(ctx context.Context, clientID int, clientRef, fileName string, data []byte) (*models.Artwork, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty artwork file")
	}
	if len(data) > maxArtworkBytes {
		return nil, fmt.Errorf("artwork file exceeds %d bytes", maxArtworkBytes)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".pdf", ".png", ".jpg", ".jpeg", ".tif", ".tiff":
	default:
		return nil, fmt.Errorf("unsupported artwork format %q", ext)
	}

	artwork := &models.Artwork{
		ClientID:    clientID,
		FileName:    fileName,
		ContentType: contentTypeForExt(ext),
		SizeBytes:   int64(len(data)),
		Status:      models.ArtworkStatusPending,
	}
	if err := s.artworkRepo.Create(artwork); err != nil {
		return nil, err
	}

	url, err := s.s3.UploadArtwork(ctx, clientRef, fmt.Sprintf("%d", artwork.ID), ext, data)
	if err != nil {
		// Roll back the record so the scan worker never picks up a row
		// whose file is not in storage.
		if delErr := s.artworkRepo.Delete(artwork.ID); delErr != nil {
			log.Warn().Err(delErr).Int("artwork_id", artwork.ID).Msg("Failed to remove artwork row after upload error")
		}
		return nil, err
	}
	artwork.FileKey = s.s3.ObjectKey(url)

	if err := s.artworkRepo.SetFileKey(artwork.ID, artwork.FileKey); err != nil {
		return nil, err
	}

	log.Info().
		Int("artwork_id", artwork.ID).
		Int("client_id", clientID).
		Str("file_key", artwork.FileKey).
		Msg("Artwork uploaded")

	return artwork, nil
}

// Get returns a client's artwork by id.
func (s *ArtworkService) Get(clientID, id int) (*models.Artwork, error) {
	artwork, err := s.artworkRepo.GetByID(clientID, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrArtworkNotFound
		}
		return nil, err
	}
	return artwork, nil
}

// DownloadURL returns a signed, time-limited URL for a client's artwork
// file. Only approved artworks can be downloaded.
func (s *ArtworkService) DownloadURL(clientID, id int) (string, error) {
	artwork, err := s.Get(clientID, id)
	if err != nil {
		return "", err
	}
	if artwork.Status != models.ArtworkStatusApproved {
		return "", utils.ErrArtworkNotApproved
	}
	return s.s3.PresignGetURL(artwork.FileKey, 15*time.Minute)
}

// Moderate runs Rekognition content moderation against a stored artwork
// and updates its status. PDF and TIFF files cannot be scanned by
// Rekognition and are approved directly.
func (s *ArtworkService) Moderate(ctx context.Context, artwork *models.Artwork, bucket string) error {
	if artwork.ContentType == "application/pdf" || artwork.ContentType == "image/tiff" {
		return s.artworkRepo.UpdateStatus(artwork.ID, models.ArtworkStatusApproved, "")
	}

	out, err := s.rekognitionClient.DetectModerationLabels(ctx, &rekognition.DetectModerationLabelsInput{
		Image: &types.Image{
			S3Object: &types.S3Object{
				Bucket: aws.String(bucket),
				Name:   aws.String(artwork.FileKey),
			},
		},
		MinConfidence: aws.Float32(moderationMinConfidence),
	})
	if err != nil {
		return fmt.Errorf("moderation scan failed: %w", err)
	}

	var reason string
	var confidence float32
	for _, label := range out.ModerationLabels {
		if label.Confidence != nil && *label.Confidence > confidence {
			confidence = *label.Confidence
			reason = aws.ToString(label.Name)
		}
	}

	if reason != "" {
		log.Warn().
			Int("artwork_id", artwork.ID).
			Str("label", reason).
			Float32("confidence", confidence).
			Msg("Artwork rejected by moderation")
		return s.artworkRepo.UpdateStatus(artwork.ID, models.ArtworkStatusRejected, reason)
	}
	return s.artworkRepo.UpdateStatus(artwork.ID, models.ArtworkStatusApproved, "")
}

// PendingArtworks lists artworks awaiting moderation for the scan worker.
func (s *ArtworkService) PendingArtworks(limit int) ([]models.Artwork, error) {
	return s.artworkRepo.GetPending(limit)
}
