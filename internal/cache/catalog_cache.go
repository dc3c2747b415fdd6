package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// CatalogCache caches serialized catalog list responses (sizes, quantity
// groups, paper stocks). The engine itself never caches; only these
// wrapping responses are, with a short TTL and explicit invalidation on
// admin writes.
type CatalogCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewCatalogCache creates a new CatalogCache with the given TTL.
func NewCatalogCache(redis *RedisClient, ttl time.Duration) *CatalogCache {
	return &CatalogCache{redis: redis, ttl: ttl}
}

func (c *CatalogCache) key(section string) string {
	return fmt.Sprintf("catalog:%s", section)
}

// Get retrieves a cached catalog section into dest. Returns false when
// the section is absent or unreadable; absence is not an error.
func (c *CatalogCache) Get(ctx context.Context, section string, dest interface{}) bool {
	raw, err := c.redis.Get(ctx, c.key(section))
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false
	}
	return true
}

// Set stores a catalog section with the configured TTL.
func (c *CatalogCache) Set(ctx context.Context, section string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog section %s: %w", section, err)
	}
	return c.redis.Set(ctx, c.key(section), string(raw), c.ttl)
}

// Invalidate drops one section after an admin write.
func (c *CatalogCache) Invalidate(ctx context.Context, section string) error {
	return c.redis.Delete(ctx, c.key(section))
}

// InvalidateAll drops every cached catalog section.
func (c *CatalogCache) InvalidateAll(ctx context.Context) error {
	return c.redis.DeleteByPattern(ctx, "catalog:*")
}
