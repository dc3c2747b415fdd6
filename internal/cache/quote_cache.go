package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// QuoteData is a priced configuration cached between the quote call and
// order creation, so checkout charges exactly what was quoted.
type QuoteData struct {
	QuoteID      string  `json:"quoteId"`
	ClientID     int     `json:"clientId"`
	ProductID    int     `json:"productId"`
	SizeName     string  `json:"sizeName,omitempty"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Quantity     int     `json:"quantity"`
	IsCustomQty  bool    `json:"isCustomQuantity"`
	PaperStockID int     `json:"paperStockId"`
	Sides        int     `json:"sides"`

	UnitPrice  int       `json:"unitPrice"`
	TotalPrice int       `json:"totalPrice"`
	CachedAt   time.Time `json:"cachedAt"`
}

// QuoteCache provides quote caching operations.
type QuoteCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewQuoteCache creates a new QuoteCache.
func NewQuoteCache(redis *RedisClient, ttl time.Duration) *QuoteCache {
	return &QuoteCache{redis: redis, ttl: ttl}
}

func (c *QuoteCache) key(quoteID string) string {
	return fmt.Sprintf("quote:%s", quoteID)
}

// Set stores a quote under its id for the configured TTL.
func (c *QuoteCache) Set(ctx context.Context, data *QuoteData) error {
	data.CachedAt = time.Now()

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal quote data: %w", err)
	}
	return c.redis.Set(ctx, c.key(data.QuoteID), string(raw), c.ttl)
}

// Get retrieves a quote by id.
func (c *QuoteCache) Get(ctx context.Context, quoteID string) (*QuoteData, error) {
	raw, err := c.redis.Get(ctx, c.key(quoteID))
	if err != nil {
		return nil, err
	}

	var data QuoteData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quote data: %w", err)
	}
	return &data, nil
}

// Delete removes a quote once consumed by an order.
func (c *QuoteCache) Delete(ctx context.Context, quoteID string) error {
	return c.redis.Delete(ctx, c.key(quoteID))
}
