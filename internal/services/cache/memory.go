package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value    string
	storedAt time.Time
}

// MemoryStore is an in-process TTL cache. Expiry is passive on read; an
// optional background sweeper bounds growth by dropping expired entries.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration

	stop chan struct{}
	once sync.Once

	// now is swappable in tests to simulate clock skew.
	now func() time.Time
}

// NewMemoryStore creates a memory-backed Store. A zero sweepInterval
// disables the sweeper.
func NewMemoryStore(ttl, sweepInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		stop:    make(chan struct{}),
		now:     time.Now,
	}
	if sweepInterval > 0 {
		go s.sweep(sweepInterval)
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return "", false
	}
	if s.now().Sub(e.storedAt) >= s.ttl {
		return "", false
	}
	return e.value, true
}

func (s *MemoryStore) Set(_ context.Context, key, value string) {
	s.mu.Lock()
	s.entries[key] = entry{value: value, storedAt: s.now()}
	s.mu.Unlock()
}

// Len reports the number of stored entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			now := s.now()
			for key, e := range s.entries {
				if now.Sub(e.storedAt) >= s.ttl {
					delete(s.entries, key)
				}
			}
			s.mu.Unlock()
		}
	}
}
