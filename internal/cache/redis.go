package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Aanishnithin07/FitForge/internal/config"
	"github.com/Aanishnithin07/FitForge/internal/types"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores results as JSON strings with a TTL
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed cache from config
func NewRedis(cfg config.CacheConfig) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	return NewRedisFromClient(rdb, cfg.TTL)
}

// NewRedisFromClient wraps an existing client
func NewRedisFromClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Ping tests the Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Get retrieves a result by key. A missing key is not an error.
func (c *RedisCache) Get(ctx context.Context, key string) (*types.AnalysisResult, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrCorruptEntry, err)
	}
	return &result, true, nil
}

// Set stores a result with the configured TTL
func (c *RedisCache) Set(ctx context.Context, key string, result *types.AnalysisResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
