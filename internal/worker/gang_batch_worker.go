package worker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/printdeck/printdeck_api/internal/models"
	"github.com/printdeck/printdeck_api/internal/repository"
	"github.com/printdeck/printdeck_api/pkg/pressroom"
)

// GangBatchWorker periodically groups paid, gang-run-eligible order items
// into batches and submits them to the print facility. Items sharing a
// paper stock and size print on the same run.
type GangBatchWorker struct {
	orderRepo   *repository.OrderRepository
	batchRepo   *repository.GangBatchRepository
	artworkRepo *repository.ArtworkRepository
	paperRepo   *repository.PaperStockRepository
	pressroom   *pressroom.Client
	interval    time.Duration
}

// NewGangBatchWorker constructs a GangBatchWorker.
func NewGangBatchWorker(
	orderRepo *repository.OrderRepository,
	batchRepo *repository.GangBatchRepository,
	artworkRepo *repository.ArtworkRepository,
	paperRepo *repository.PaperStockRepository,
	pressroomClient *pressroom.Client,
	interval time.Duration,
) *GangBatchWorker {
	return &GangBatchWorker{
		orderRepo:   orderRepo,
		batchRepo:   batchRepo,
		artworkRepo: artworkRepo,
		paperRepo:   paperRepo,
		pressroom:   pressroomClient,
		interval:    interval,
	}
}

// Start begins the periodic batching loop and listens for context cancellation.
func (w *GangBatchWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting gang batch worker")

	// Run immediately on start
	w.run(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Gang batch worker stopped")
			return
		}
	}
}

func (w *GangBatchWorker) run(ctx context.Context) {
	w.buildBatches(ctx)
	w.pollSubmitted(ctx)
}

// buildBatches groups batchable items by paper stock and size and submits
// each group as one run.
func (w *GangBatchWorker) buildBatches(ctx context.Context) {
	items, err := w.orderRepo.GetBatchableItems()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load batchable items")
		return
	}
	if len(items) == 0 {
		return
	}

	type groupKey struct {
		paperStockID int
		sizeName     string
	}
	groups := make(map[groupKey][]models.OrderItem)
	for _, item := range items {
		// Production requires an approved artwork file.
		if item.ArtworkID == nil {
			continue
		}
		approved, err := w.artworkRepo.IsApproved(*item.ArtworkID)
		if err != nil || !approved {
			continue
		}
		key := groupKey{paperStockID: item.PaperStockID, sizeName: item.SizeName}
		groups[key] = append(groups[key], item)
	}

	for key, group := range groups {
		total := 0
		itemIDs := make([]int, 0, len(group))
		for _, item := range group {
			total += item.Quantity
			itemIDs = append(itemIDs, item.ID)
		}

		batch := &models.GangBatch{
			BatchNumber:   generateBatchNumber(),
			PaperStockID:  key.paperStockID,
			SizeName:      key.sizeName,
			TotalQuantity: total,
			Status:        models.GangBatchStatusOpen,
		}
		if err := w.batchRepo.Create(batch); err != nil {
			log.Error().Err(err).Msg("Failed to create gang batch")
			continue
		}
		if err := w.orderRepo.AssignBatch(itemIDs, batch.ID); err != nil {
			log.Error().Err(err).Int("batch_id", batch.ID).Msg("Failed to assign items to batch")
			continue
		}

		w.submit(ctx, batch)
	}
}

func (w *GangBatchWorker) submit(ctx context.Context, batch *models.GangBatch) {
	paper, err := w.paperRepo.GetByID(batch.PaperStockID)
	if err != nil {
		log.Error().Err(err).Int("paper_stock_id", batch.PaperStockID).Msg("Failed to resolve paper stock for batch")
		return
	}

	resp, err := w.pressroom.SubmitBatch(ctx, batch.BatchNumber, batch.SizeName, paper.Name, batch.TotalQuantity)
	if err != nil {
		log.Error().Err(err).Str("batch_number", batch.BatchNumber).Msg("Failed to submit gang batch")
		return
	}
	if !resp.Ok() {
		log.Warn().
			Str("batch_number", batch.BatchNumber).
			Str("status", resp.Status).
			Str("message", resp.Message).
			Msg("Gang batch rejected by facility")
		if err := w.batchRepo.UpdateStatus(batch.ID, models.GangBatchStatusRejected); err != nil {
			log.Error().Err(err).Int("batch_id", batch.ID).Msg("Failed to update batch status")
		}
		return
	}

	if err := w.batchRepo.MarkSubmitted(batch.ID, resp.RunRef); err != nil {
		log.Error().Err(err).Int("batch_id", batch.ID).Msg("Failed to mark batch submitted")
		return
	}

	log.Info().
		Str("batch_number", batch.BatchNumber).
		Str("run_ref", resp.RunRef).
		Int("total_quantity", batch.TotalQuantity).
		Msg("Gang batch submitted")
}

// pollSubmitted checks the facility status of recently submitted batches.
func (w *GangBatchWorker) pollSubmitted(ctx context.Context) {
	batches, err := w.batchRepo.List(100)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list gang batches")
		return
	}

	for _, batch := range batches {
		if batch.Status != models.GangBatchStatusSubmitted || batch.PressroomRef == nil {
			continue
		}

		resp, err := w.pressroom.GetRunStatus(ctx, *batch.PressroomRef)
		if err != nil {
			log.Error().Err(err).Str("run_ref", *batch.PressroomRef).Msg("Failed to check run status")
			continue
		}

		switch resp.Status {
		case pressroom.RunStatusAccepted, pressroom.RunStatusPrinting, pressroom.RunStatusCompleted:
			if err := w.batchRepo.UpdateStatus(batch.ID, models.GangBatchStatusAccepted); err != nil {
				log.Error().Err(err).Int("batch_id", batch.ID).Msg("Failed to update batch status")
			}
		case pressroom.RunStatusRejected:
			if err := w.batchRepo.UpdateStatus(batch.ID, models.GangBatchStatusRejected); err != nil {
				log.Error().Err(err).Int("batch_id", batch.ID).Msg("Failed to update batch status")
			}
		}
	}
}

// generateBatchNumber builds a facility-facing batch reference, e.g.
// GB-20260901-7C4E2A.
func generateBatchNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("GB-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
