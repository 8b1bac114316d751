package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DealCache implements ports.DealCache using Redis.
type DealCache struct {
	client *goredis.Client
	prefix string
}

// NewDealCache creates a new Redis-backed dealId cache.
func NewDealCache(client *goredis.Client) *DealCache {
	return &DealCache{
		client: client,
		prefix: "deal:",
	}
}

// Seen reports whether the dealId was remembered as stored.
func (c *DealCache) Seen(ctx context.Context, dealID string) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+dealID).Result()
	if err != nil {
		return false, fmt.Errorf("redis deal exists: %w", err)
	}
	return n > 0, nil
}

// Remember marks the dealId as stored for ttl. A zero ttl keeps the key forever.
func (c *DealCache) Remember(ctx context.Context, dealID string, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+dealID, 1, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis deal set: %w", err)
	}
	return nil
}
