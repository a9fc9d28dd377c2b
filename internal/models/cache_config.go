package models

// CacheBackendType represents the type of response cache backend to use.
type CacheBackendType string

const (
	CacheBackendRedis  CacheBackendType = "redis"
	CacheBackendMemory CacheBackendType = "memory"
)

// CacheConfig holds configuration for the completion response cache.
type CacheConfig struct {
	Backend  CacheBackendType `json:"backend,omitzero" yaml:"backend"`     // "memory" (default) or "redis"
	RedisURL string           `json:"redis_url,omitzero" yaml:"redis_url"` // Required if backend is "redis"

	// TTLSeconds is how long a cached completion stays valid. Entries older
	// than this are treated as absent on lookup.
	TTLSeconds int `json:"ttl_seconds,omitzero" yaml:"ttl_seconds"`

	// SweepIntervalSeconds controls how often the memory backend drops
	// expired entries. Zero disables the sweeper (passive expiry only).
	SweepIntervalSeconds int `json:"sweep_interval_seconds,omitzero" yaml:"sweep_interval_seconds"`
}
