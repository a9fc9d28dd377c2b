package cache

import (
	"context"
	"errors"
	"time"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "seraph:response:"

// RedisStore backs the response cache with Redis, letting multiple relay
// instances share cached completions. Expiry is delegated to Redis TTLs.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a redis-backed Store using the given client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			fiberlog.Warnf("ResponseCache: redis get failed: %v", err)
		}
		return "", false
	}
	return val, true
}

func (s *RedisStore) Set(ctx context.Context, key, value string) {
	if err := s.client.Set(ctx, redisKeyPrefix+key, value, s.ttl).Err(); err != nil {
		fiberlog.Warnf("ResponseCache: redis set failed: %v", err)
	}
}

// Close is a no-op; the shared client is owned by the relay.
func (s *RedisStore) Close() error { return nil }
