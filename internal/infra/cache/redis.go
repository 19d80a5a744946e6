// Package cache provides the redis-backed statement cache.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bk-finance/backend/config"
	"github.com/bk-finance/backend/internal/application/adapter"
)

// keyPrefix namespaces every cache key so Invalidate can drop them all.
const keyPrefix = "bkfinance:statement:"

// StatementCache implements adapter.StatementCache on redis.
type StatementCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisConnection creates a redis client from configuration and verifies
// the connection.
func NewRedisConnection(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	slog.Info("Redis connection established", "addr", cfg.Addr)
	return client, nil
}

// NewStatementCache creates a statement cache with the given TTL.
func NewStatementCache(client *redis.Client, ttl time.Duration) *StatementCache {
	return &StatementCache{client: client, ttl: ttl}
}

// Get retrieves a cached payload. A missing key is not an error.
func (c *StatementCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// Set stores a payload under the key with the cache TTL.
func (c *StatementCache) Set(ctx context.Context, key string, payload []byte) error {
	return c.client.Set(ctx, keyPrefix+key, payload, c.ttl).Err()
}

// Invalidate drops every cached statement.
func (c *StatementCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

var _ adapter.StatementCache = (*StatementCache)(nil)
