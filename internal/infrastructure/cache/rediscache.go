// Package cache provides the redis-backed dashboard cache.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fibernet/internal/shared/config"
	"fibernet/internal/shared/logger"
)

// RedisCache implements the dashboard Cache contract on top of redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to redis. Returns nil when redis is disabled,
// which callers treat as caching off.
func NewRedisCache(cfg *config.RedisConfig, log logger.Interface) (*RedisCache, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Infow("redis cache connected", "addr", cfg.GetAddr(), "db", cfg.DB)
	return &RedisCache{client: client}, nil
}

// Get returns (nil, nil) on a miss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
