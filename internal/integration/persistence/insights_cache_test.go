package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mini, client
}

func TestInsightsCache(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	payload := []byte(`{"health":{"score":85}}`)

	t.Run("miss returns nil without error", func(t *testing.T) {
		_, client := newTestCache(t)
		cache := NewInsightsCache(client)

		got, err := cache.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected a miss, got %q", got)
		}
	})

	t.Run("set then get round-trips the payload", func(t *testing.T) {
		_, client := newTestCache(t)
		cache := NewInsightsCache(client)

		if err := cache.Set(ctx, userID, payload, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := cache.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != string(payload) {
			t.Errorf("expected %q, got %q", payload, got)
		}
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		mini, client := newTestCache(t)
		cache := NewInsightsCache(client)

		if err := cache.Set(ctx, userID, payload, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		mini.FastForward(2 * time.Minute)

		got, err := cache.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected the entry to expire, got %q", got)
		}
	})

	t.Run("invalidate removes the entry", func(t *testing.T) {
		_, client := newTestCache(t)
		cache := NewInsightsCache(client)

		if err := cache.Set(ctx, userID, payload, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cache.Invalidate(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := cache.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Error("expected the entry to be gone")
		}
	})

	t.Run("owners do not share entries", func(t *testing.T) {
		_, client := newTestCache(t)
		cache := NewInsightsCache(client)
		otherID := uuid.New()

		if err := cache.Set(ctx, userID, payload, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := cache.Get(ctx, otherID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Error("expected a miss for the other owner")
		}
	})
}
