// Package cache provides the TTL stores and the budget-bounded gateway the
// lookup engine reads and writes product entries through. The cache is
// optional infrastructure: every failure path degrades to a miss.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/shelfscan/backend/internal/domain"
)

// Gateway wraps a CacheStore with deadline-budget enforcement and the
// JSON entry codec. All failures (store errors, timeouts, malformed
// payloads) are logged and reported as absent; a lookup never fails
// because of its cache.
type Gateway struct {
	store domain.CacheStore
}

// NewGateway creates a gateway over store. A nil store disables caching.
func NewGateway(store domain.CacheStore) *Gateway {
	return &Gateway{store: store}
}

// Get returns the entry stored under key, or nil when the entry is absent,
// the budget is exhausted, or the store misbehaves. The store call is
// bounded by the remaining budget.
func (g *Gateway) Get(ctx context.Context, key string, budget domain.Budget) *domain.CacheEntry {
	if g.store == nil {
		return nil
	}

	remaining := budget.Remaining()
	if remaining == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, remaining)
	defer cancel()

	payload, err := g.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			log.Printf("[cache] get %q failed: %v", key, err)
		}
		return nil
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal([]byte(payload), &entry); err != nil {
		log.Printf("[cache] malformed entry under %q: %v", key, err)
		return nil
	}

	switch entry.Status {
	case domain.CacheStatusFound, domain.CacheStatusNotFound:
		return &entry
	default:
		log.Printf("[cache] unknown entry status %q under %q", entry.Status, key)
		return nil
	}
}

// Set stores entry under key for ttl, bounded by the remaining budget.
// Failures are logged and swallowed.
func (g *Gateway) Set(ctx context.Context, key string, entry *domain.CacheEntry, ttl time.Duration, budget domain.Budget) {
	if g.store == nil || entry == nil {
		return
	}

	remaining := budget.Remaining()
	if remaining == 0 {
		return
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		log.Printf("[cache] encode entry for %q failed: %v", key, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, remaining)
	defer cancel()

	if err := g.store.Set(ctx, key, string(payload), ttl); err != nil {
		log.Printf("[cache] set %q failed: %v", key, err)
	}
}
