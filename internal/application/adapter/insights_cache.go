package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InsightsCache caches the serialized insights bundle per owner. Cache
// failures must never surface to callers; the engine simply recomputes.
type InsightsCache interface {
	// Get returns the cached bundle payload for the owner, or
	// (nil, nil) on a cache miss.
	Get(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// Set stores the bundle payload for the owner with the given TTL.
	Set(ctx context.Context, userID uuid.UUID, payload []byte, ttl time.Duration) error

	// Invalidate removes the cached bundle for the owner. Called on
	// every sale or expense write.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
