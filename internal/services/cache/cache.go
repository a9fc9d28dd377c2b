// Package cache provides the time-expiring completion response cache.
// Entries are keyed by exact trimmed input text; an entry older than the
// configured TTL is treated as absent.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/thaumiel-labs/seraph-relay/internal/models"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

// Store is the response cache consumed by the dispatcher.
type Store interface {
	// Get returns the cached completion for key, or false on a miss
	// (absent or expired).
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a completion under key, overwriting any previous entry
	// and resetting its timestamp.
	Set(ctx context.Context, key, value string)

	Close() error
}

// New builds the Store selected by config. The redis backend requires a
// connected client; the memory backend is the default.
func New(cfg models.CacheConfig, redisClient *redis.Client) (Store, error) {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second

	switch cfg.Backend {
	case models.CacheBackendMemory, "":
		sweep := time.Duration(cfg.SweepIntervalSeconds) * time.Second
		fiberlog.Infof("ResponseCache: using in-memory backend (ttl=%v)", ttl)
		return NewMemoryStore(ttl, sweep), nil

	case models.CacheBackendRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("redis client not configured for redis cache backend")
		}
		fiberlog.Infof("ResponseCache: using redis backend (ttl=%v)", ttl)
		return NewRedisStore(redisClient, ttl), nil

	default:
		return nil, fmt.Errorf("unsupported cache backend: %s (supported: memory, redis)", cfg.Backend)
	}
}
