package cache

import (
	"context"
	"sync"
	"time"

	"github.com/shelfscan/backend/internal/domain"
)

// memoryItem is a single stored payload with its expiration instant
type memoryItem struct {
	value      string
	expiration time.Time
}

// MemoryStore is a thread-safe in-memory TTL store. It backs development
// deployments and tests; production uses Redis.
type MemoryStore struct {
	data  map[string]memoryItem
	mutex sync.RWMutex
}

// NewMemoryStore creates a new in-memory store and starts its janitor.
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		data: make(map[string]memoryItem),
	}

	go store.cleanupExpired()

	return store
}

// Get retrieves a payload, treating expired entries as absent.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, exists := s.data[key]
	if !exists {
		return "", domain.ErrCacheMiss
	}

	if time.Now().After(item.expiration) {
		return "", domain.ErrCacheMiss
	}

	return item.value, nil
}

// Set stores a payload under key for ttl.
func (s *MemoryStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[key] = memoryItem{
		value:      value,
		expiration: time.Now().Add(ttl),
	}

	return nil
}

// cleanupExpired removes expired entries periodically.
func (s *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, item := range s.data {
			if now.After(item.expiration) {
				delete(s.data, key)
			}
		}
		s.mutex.Unlock()
	}
}

// Size returns the current number of items (for debugging/monitoring).
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// Clear removes all items.
func (s *MemoryStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data = make(map[string]memoryItem)
}
