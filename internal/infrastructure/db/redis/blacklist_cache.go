package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopstack/commerce-api/internal/core/ports"
)

// BlacklistCache is a read-through cache in front of a durable TokenBlacklist.
// The auth gate checks the blacklist on every protected request, so hits are
// served from Redis; the wrapped store stays the source of truth and absorbs
// any cache unavailability.
type BlacklistCache struct {
	client *redis.Client
	store  ports.TokenBlacklist
}

func NewBlacklistCache(client *redis.Client, store ports.TokenBlacklist) *BlacklistCache {
	return &BlacklistCache{client: client, store: store}
}

// Add writes through to the durable store, then caches the entry with a TTL
// matching the token expiry. A cache write failure is not fatal: the store
// already holds the entry.
func (c *BlacklistCache) Add(ctx context.Context, token string, expiresAt time.Time) error {
	if err := c.store.Add(ctx, token, expiresAt); err != nil {
		return err
	}

	if ttl := time.Until(expiresAt); ttl > 0 {
		_ = c.client.Set(ctx, c.key(token), "1", ttl).Err()
	}
	return nil
}

// Contains answers from Redis when possible and falls back to the store on a
// miss or a cache error. Only positive answers are cached (by Add), so a
// cache hit is always authoritative.
func (c *BlacklistCache) Contains(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(token)).Result()
	if err == nil && n > 0 {
		return true, nil
	}
	return c.store.Contains(ctx, token)
}

func (c *BlacklistCache) key(token string) string {
	return "blacklist:" + token
}
