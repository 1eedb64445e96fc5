package usecase

import (
	"context"
	"log"
	"time"

	"github.com/shelfscan/backend/internal/domain"
	"github.com/shelfscan/backend/internal/gtin"
	"github.com/shelfscan/backend/internal/infrastructure/cache"
	"github.com/shelfscan/backend/internal/metrics"
)

// LookupServiceConfig holds configuration for the lookup service
type LookupServiceConfig struct {
	DefaultTimeout time.Duration
	CacheKeyPrefix string
	FoundTTL       time.Duration // applied to positive cache entries
	NotFoundTTL    time.Duration // applied to confirmed-negative entries
}

// LookupService resolves a scanned barcode into product metadata. It
// generates the normalized candidate forms, probes the cache for every
// candidate, then walks the provider chain per candidate, and owns the
// asymmetric cache-write policy: positives are cached for days, confirmed
// negatives for an hour, and nothing is cached when a provider errored or
// the budget ran out.
type LookupService struct {
	cache          *cache.Gateway
	providers      []domain.Provider
	defaultTimeout time.Duration
	keyPrefix      string
	foundTTL       time.Duration
	notFoundTTL    time.Duration
}

// NewLookupService creates a lookup service. Providers are consulted in the
// order given; put the broadest catalog first.
func NewLookupService(gateway *cache.Gateway, chain []domain.Provider, config LookupServiceConfig) *LookupService {
	defaultTimeout := config.DefaultTimeout
	if defaultTimeout == 0 {
		defaultTimeout = domain.DefaultLookupTimeout
	}
	keyPrefix := config.CacheKeyPrefix
	if keyPrefix == "" {
		keyPrefix = "product:"
	}
	foundTTL := config.FoundTTL
	if foundTTL == 0 {
		foundTTL = 7 * 24 * time.Hour
	}
	notFoundTTL := config.NotFoundTTL
	if notFoundTTL == 0 {
		notFoundTTL = 1 * time.Hour
	}

	return &LookupService{
		cache:          gateway,
		providers:      chain,
		defaultTimeout: defaultTimeout,
		keyPrefix:      keyPrefix,
		foundTTL:       foundTTL,
		notFoundTTL:    notFoundTTL,
	}
}

// LookupOptions carries per-call options for LookupByBarcode.
type LookupOptions struct {
	// Timeout bounds the whole lookup. The zero value selects the
	// service's configured default (it never means "no time at all").
	// To run with an already-expired budget, returning nil before any
	// cache or provider I/O, pass a negative value.
	Timeout time.Duration
}

// LookupByBarcode resolves raw into product metadata, or nil when nothing
// is found before the budget runs out. It never returns an error: cache
// failures, provider failures, and deadline exhaustion all degrade to nil.
func (s *LookupService) LookupByBarcode(ctx context.Context, raw string, opts LookupOptions) *domain.ProductInfo {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = s.defaultTimeout
	}
	return s.lookup(ctx, raw, domain.StartBudget(timeout))
}

func (s *LookupService) lookup(ctx context.Context, raw string, budget domain.Budget) *domain.ProductInfo {
	start := time.Now()
	outcome := "not_found"
	defer func() {
		metrics.LookupsTotal.WithLabelValues(outcome).Inc()
		metrics.LookupDuration.Observe(time.Since(start).Seconds())
	}()

	candidates := gtin.CandidatesFor(raw)
	if len(candidates) == 0 {
		log.Printf("[lookup] no candidates for input %q", raw)
		return nil
	}

	// Cache pass: probe every candidate before touching any provider.
	// A cached negative is not a final answer here; another representation
	// of the same product may still have a positive entry.
	for _, candidate := range candidates {
		if budget.Expired() {
			log.Printf("[lookup] budget exhausted during cache pass for %q", raw)
			return nil
		}

		entry := s.cache.Get(ctx, s.cacheKey(candidate.Code), budget)
		switch {
		case entry.IsFound():
			metrics.CacheEvents.WithLabelValues("hit").Inc()
			outcome = "found"
			return entry.Product
		case entry.IsNotFound():
			metrics.CacheEvents.WithLabelValues("negative_hit").Inc()
		default:
			metrics.CacheEvents.WithLabelValues("miss").Inc()
		}
	}

	// Provider pass: walk the chain per candidate, first hit wins.
	for _, candidate := range candidates {
		if budget.Expired() {
			log.Printf("[lookup] budget exhausted during provider pass for %q", raw)
			return nil
		}

		product, hadError := s.resolveAcrossProviders(ctx, candidate.Code, budget)
		if product != nil {
			s.cache.Set(ctx, s.cacheKey(candidate.Code), &domain.CacheEntry{
				Status:  domain.CacheStatusFound,
				Product: product,
			}, s.foundTTL, budget)
			outcome = "found"
			return product
		}

		// Cache a negative only when every provider confirmed it. A
		// transient outage or an exhausted budget must not calcify into
		// a false "no such product".
		if !hadError {
			s.cache.Set(ctx, s.cacheKey(candidate.Code), &domain.CacheEntry{
				Status: domain.CacheStatusNotFound,
			}, s.notFoundTTL, budget)
		}
	}

	return nil
}

// resolveAcrossProviders consults the chain in priority order for one
// candidate. It returns the first hit and whether any provider errored or
// the budget ran out along the way.
func (s *LookupService) resolveAcrossProviders(ctx context.Context, candidate string, budget domain.Budget) (*domain.ProductInfo, bool) {
	hadError := false

	for _, provider := range s.providers {
		remaining := budget.Remaining()
		if remaining == 0 {
			// Deadline exhaustion must never be mistaken for a
			// confirmed negative.
			return nil, true
		}

		result := provider.Lookup(ctx, candidate, remaining)
		metrics.ProviderRequests.WithLabelValues(provider.Name(), metrics.OutcomeLabel(result.Status)).Inc()

		switch result.Status {
		case domain.OutcomeFound:
			if result.Product != nil && result.Product.Name != "" {
				return result.Product, hadError
			}
		case domain.OutcomeError:
			log.Printf("[lookup] provider %s errored for candidate %s", provider.Name(), candidate)
			hadError = true
		}
	}

	return nil, hadError
}

func (s *LookupService) cacheKey(code string) string {
	return s.keyPrefix + code
}
