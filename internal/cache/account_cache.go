package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/white/fluxx-sales/internal/models"
)

// ErrCacheMiss is returned when no entry exists, or when caching is disabled.
var ErrCacheMiss = errors.New("cache miss")

// AccountCache keeps the active accounts of one reference id in Redis for a
// short TTL. A nil client disables it.
type AccountCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAccountCache(client *redis.Client, ttl time.Duration) *AccountCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &AccountCache{client: client, ttl: ttl}
}

// Enabled reports whether a Redis client is configured.
func (c *AccountCache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get returns the cached accounts for referenceID.
func (c *AccountCache) Get(ctx context.Context, referenceID string) ([]models.Account, error) {
	if !c.Enabled() {
		return nil, ErrCacheMiss
	}

	val, err := c.client.Get(ctx, buildKey(referenceID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}

	var accounts []models.Account
	if err := json.Unmarshal(val, &accounts); err != nil {
		return nil, fmt.Errorf("failed to deserialize accounts: %w", err)
	}
	return accounts, nil
}

// Set stores accounts for referenceID with the cache TTL.
func (c *AccountCache) Set(ctx context.Context, referenceID string, accounts []models.Account) error {
	if !c.Enabled() {
		return nil
	}

	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to serialize accounts: %w", err)
	}
	if err := c.client.Set(ctx, buildKey(referenceID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Delete drops the entry for referenceID.
func (c *AccountCache) Delete(ctx context.Context, referenceID string) error {
	if !c.Enabled() {
		return nil
	}
	if err := c.client.Del(ctx, buildKey(referenceID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}

// Ping checks Redis reachability; a disabled cache is always healthy.
func (c *AccountCache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Format: accounts:{referenceid}
func buildKey(referenceID string) string {
	return "accounts:" + referenceID
}
