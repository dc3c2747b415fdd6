package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/printdeck/printdeck_api/internal/service"
)

// ArtworkScanWorker runs content moderation over pending artwork uploads.
type ArtworkScanWorker struct {
	artworkService *service.ArtworkService
	bucket         string
	interval       time.Duration
}

// NewArtworkScanWorker constructs an ArtworkScanWorker.
func NewArtworkScanWorker(artworkService *service.ArtworkService, bucket string, interval time.Duration) *ArtworkScanWorker {
	return &ArtworkScanWorker{
		artworkService: artworkService,
		bucket:         bucket,
		interval:       interval,
	}
}

// Start begins the periodic scan loop and listens for context cancellation.
func (w *ArtworkScanWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting artwork scan worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Artwork scan worker stopped")
			return
		}
	}
}

func (w *ArtworkScanWorker) run(ctx context.Context) {
	pending, err := w.artworkService.PendingArtworks(20)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load pending artworks")
		return
	}

	for i := range pending {
		if err := w.artworkService.Moderate(ctx, &pending[i], w.bucket); err != nil {
			log.Error().Err(err).Int("artwork_id", pending[i].ID).Msg("Failed to moderate artwork")
		}
	}
}
