// Package usecases assembles the per-role dashboard views. Dashboards
// aggregate counts from several repositories, so results are cached for
// a short TTL when a cache backend is configured.
package usecases

import (
	"context"
	"encoding/json"
	"time"

	"fibernet/internal/shared/logger"
)

// Cache is a byte-level cache. Get returns (nil, nil) on a miss.
// A nil Cache disables caching entirely.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// withCache serves dest from cache when possible, otherwise computes it
// and stores the result. Cache failures degrade to a direct compute.
func withCache[T any](ctx context.Context, cache Cache, log logger.Interface, key string, ttl time.Duration, compute func() (*T, error)) (*T, error) {
	if cache != nil && ttl > 0 {
		data, err := cache.Get(ctx, key)
		if err != nil {
			log.Warnw("cache read failed", "key", key, "error", err)
		} else if data != nil {
			var cached T
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
			log.Warnw("discarding malformed cache entry", "key", key)
		}
	}

	result, err := compute()
	if err != nil {
		return nil, err
	}

	if cache != nil && ttl > 0 {
		if data, err := json.Marshal(result); err == nil {
			if err := cache.Set(ctx, key, data, ttl); err != nil {
				log.Warnw("cache write failed", "key", key, "error", err)
			}
		}
	}
	return result, nil
}
