package domain

import (
	"context"
	"time"
)

// CacheStore defines the TTL key-value contract consumed from the external
// cache service. Implementations must honor ctx cancellation; callers treat
// any error as a miss.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// Provider defines one external product-data source. Lookup must complete
// within remaining (implementations bound their HTTP call by it) and must
// never return an error: failures are reported through the outcome.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, candidate string, remaining time.Duration) ProviderOutcome
}
