package domain

// OutcomeStatus distinguishes "the provider confirmed this barcode is unknown"
// from "the provider failed to answer". The two must never be conflated:
// only confirmed negatives may be cached.
type OutcomeStatus int

const (
	OutcomeFound OutcomeStatus = iota
	OutcomeNotFound
	OutcomeError
)

// ProviderOutcome is the tri-state result of one provider call for one candidate.
// Product is non-nil only when Status is OutcomeFound.
type ProviderOutcome struct {
	Status  OutcomeStatus
	Product *ProductInfo
}

// Found wraps a successful lookup result.
func Found(p *ProductInfo) ProviderOutcome {
	return ProviderOutcome{Status: OutcomeFound, Product: p}
}

// NotFound reports a confirmed negative.
func NotFound() ProviderOutcome {
	return ProviderOutcome{Status: OutcomeNotFound}
}

// Errored reports a failed call whose answer is unknown.
func Errored() ProviderOutcome {
	return ProviderOutcome{Status: OutcomeError}
}

// Cache entry statuses. Only these two variants are ever persisted;
// provider errors are never written to the cache.
const (
	CacheStatusFound    = "found"
	CacheStatusNotFound = "not_found"
)

// CacheEntry is the persisted form of a lookup answer: either a found product
// or a not-found sentinel. Stored as JSON in the external cache.
type CacheEntry struct {
	Status  string       `json:"status"`
	Product *ProductInfo `json:"product,omitempty"`
}

// IsFound reports whether the entry holds a usable product.
// An entry with a missing or empty name never counts as found.
func (e *CacheEntry) IsFound() bool {
	return e != nil && e.Status == CacheStatusFound && e.Product != nil && e.Product.Name != ""
}

// IsNotFound reports whether the entry is a confirmed negative.
func (e *CacheEntry) IsNotFound() bool {
	return e != nil && e.Status == CacheStatusNotFound
}
