package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/printdeck/printdeck_api/internal/cache"
	"github.com/printdeck/printdeck_api/internal/models"
	"github.com/printdeck/printdeck_api/internal/repository"
	"github.com/printdeck/printdeck_api/internal/utils"
)

// OrderItemRequest references a previously issued quote, optionally with
// an uploaded artwork.
type OrderItemRequest struct {
	QuoteID   string `json:"quoteId" binding:"required"`
	ArtworkID *int   `json:"artworkId"`
}

// CreateOrderRequest creates an order from one or more quotes.
type CreateOrderRequest struct {
	CustomerEmail string             `json:"customerEmail" binding:"required,email"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1"`
}

// OrderService handles order creation and reads. Orders are built from
// cached quotes so the charged price is exactly the quoted one; expired
// quotes force the storefront to re-quote.
type OrderService struct {
	orderRepo   *repository.OrderRepository
	productRepo *repository.ProductRepository
	artworkRepo *repository.ArtworkRepository
	quoteCache  *cache.QuoteCache
}

func NewOrderService(
	orderRepo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
	artworkRepo *repository.ArtworkRepository,
	quoteCache *cache.QuoteCache,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		artworkRepo: artworkRepo,
		quoteCache:  quoteCache,
	}
}

// CreateOrder materializes cached quotes into a persisted order. Every
// quote must belong to the calling client and still be in cache.
func (s *OrderService) CreateOrder(ctx context.Context, clientID int, req *CreateOrderRequest) (*models.Order, error) {
	items := make([]models.OrderItem, 0, len(req.Items))
	total := 0

	for _, ir := range req.Items {
		quote, err := s.quoteCache.Get(ctx, ir.QuoteID)
		if err != nil {
			return nil, utils.ErrQuoteNotFound
		}
		if quote.ClientID != clientID {
			return nil, utils.ErrQuoteNotFound
		}

		// The product may have been deactivated since the quote was issued.
		product, err := s.productRepo.GetByID(quote.ProductID)
		if err != nil || !product.IsActive {
			return nil, utils.ErrProductNotFound
		}

		if ir.ArtworkID != nil {
			if _, err := s.artworkRepo.GetByID(clientID, *ir.ArtworkID); err != nil {
				if err == sql.ErrNoRows {
					return nil, utils.ErrArtworkNotFound
				}
				return nil, err
			}
		}

		items = append(items, models.OrderItem{
			ProductID:    quote.ProductID,
			SizeName:     quote.SizeName,
			Width:        quote.Width,
			Height:       quote.Height,
			Quantity:     quote.Quantity,
			IsCustomQty:  quote.IsCustomQty,
			PaperStockID: quote.PaperStockID,
			Sides:        quote.Sides,
			UnitPrice:    quote.UnitPrice,
			LinePrice:    quote.TotalPrice,
			ArtworkID:    ir.ArtworkID,
		})
		total += quote.TotalPrice
	}

	order := &models.Order{
		OrderNumber:   generateOrderNumber(),
		ClientID:      clientID,
		CustomerEmail: req.CustomerEmail,
		Status:        models.OrderStatusPending,
		TotalPrice:    total,
		Items:         items,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	// Quotes are single-use; TTL covers any delete that fails here.
	for _, ir := range req.Items {
		if err := s.quoteCache.Delete(ctx, ir.QuoteID); err != nil {
			log.Warn().Err(err).Str("quote_id", ir.QuoteID).Msg("Failed to delete consumed quote")
		}
	}

	log.Info().
		Str("order_number", order.OrderNumber).
		Int("client_id", clientID).
		Int("total_price", total).
		Int("items", len(items)).
		Msg("Order created")

	return order, nil
}

// GetOrder returns a client's order by its order number.
func (s *OrderService) GetOrder(clientID int, orderNumber string) (*models.Order, error) {
	order, err := s.orderRepo.GetByNumber(clientID, orderNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// MarkPaid transitions an order to paid, making its gang-run eligible
// items visible to the batching worker.
func (s *OrderService) MarkPaid(clientID int, orderNumber string) (*models.Order, error) {
	order, err := s.GetOrder(clientID, orderNumber)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return order, nil
	}

	if err := s.orderRepo.UpdateStatus(order.ID, models.OrderStatusPaid); err != nil {
		return nil, err
	}
	order.Status = models.OrderStatusPaid
	return order, nil
}

// generateOrderNumber builds a customer-facing order reference, e.g.
// PD-20260901-4F2A1B3C.
func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("PD-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
