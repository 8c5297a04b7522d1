package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	domain "forum-api/internal/domain/account"
)

// AccountCache defines the interface for account caching operations.
type AccountCache interface {
	// Get retrieves an account from cache by ID.
	// Returns nil if the account is not cached.
	Get(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// Set stores an account in cache with the configured TTL.
	Set(ctx context.Context, account *domain.Account) error

	// Delete removes an account from cache by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// RedisAccountCache implements AccountCache using Redis as the backing store.
type RedisAccountCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisAccountCache creates a new Redis-backed account cache.
func NewRedisAccountCache(client *redis.Client, ttl time.Duration, log *zap.Logger) AccountCache {
	return &RedisAccountCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// cacheKey generates a Redis key for an account ID.
func (c *RedisAccountCache) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("account:%s", id)
}

// Get retrieves an account from Redis cache.
func (c *RedisAccountCache) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	key := c.cacheKey(id)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		// Cache miss - not an error
		c.log.Debug("cache miss", zap.String("account_id", id.String()))
		return nil, nil
	}
	if err != nil {
		c.log.Error("failed to get from cache", zap.String("account_id", id.String()), zap.Error(err))
		return nil, err
	}

	var acc domain.Account
	if err := json.Unmarshal(data, &acc); err != nil {
		c.log.Error("failed to unmarshal cached account", zap.String("account_id", id.String()), zap.Error(err))
		return nil, err
	}

	c.log.Debug("cache hit", zap.String("account_id", id.String()))
	return &acc, nil
}

// Set stores an account in Redis cache with TTL.
func (c *RedisAccountCache) Set(ctx context.Context, account *domain.Account) error {
	if account == nil {
		return fmt.Errorf("cannot cache nil account")
	}

	key := c.cacheKey(account.ID)

	data, err := json.Marshal(account)
	if err != nil {
		c.log.Error("failed to marshal account for cache", zap.String("account_id", account.ID.String()), zap.Error(err))
		return err
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set cache", zap.String("account_id", account.ID.String()), zap.Error(err))
		return err
	}

	c.log.Debug("cached account", zap.String("account_id", account.ID.String()), zap.Duration("ttl", c.ttl))
	return nil
}

// Delete removes an account from Redis cache.
func (c *RedisAccountCache) Delete(ctx context.Context, id uuid.UUID) error {
	key := c.cacheKey(id)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Error("failed to delete from cache", zap.String("account_id", id.String()), zap.Error(err))
		return err
	}

	c.log.Debug("deleted from cache", zap.String("account_id", id.String()))
	return nil
}
