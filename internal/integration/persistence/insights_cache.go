package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shopledger/backend/internal/application/adapter"
)

// insightsCacheKeyPrefix namespaces the per-owner bundle keys.
const insightsCacheKeyPrefix = "insights:"

// insightsCache implements adapter.InsightsCache on Redis.
type insightsCache struct {
	client *redis.Client
}

// NewInsightsCache creates a new Redis-backed insights cache.
func NewInsightsCache(client *redis.Client) adapter.InsightsCache {
	return &insightsCache{
		client: client,
	}
}

// Get returns the cached bundle payload for the owner, or (nil, nil)
// on a cache miss.
func (c *insightsCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	payload, err := c.client.Get(ctx, cacheKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

// Set stores the bundle payload for the owner with the given TTL.
func (c *insightsCache) Set(ctx context.Context, userID uuid.UUID, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, cacheKey(userID), payload, ttl).Err()
}

// Invalidate removes the cached bundle for the owner.
func (c *insightsCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, cacheKey(userID)).Err()
}

func cacheKey(userID uuid.UUID) string {
	return insightsCacheKeyPrefix + userID.String()
}
