package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfscan/backend/internal/domain"
)

// recordingStore is a scriptable CacheStore that records every call.
type recordingStore struct {
	payloads map[string]string
	getErr   error
	setErr   error
	gets     []string
	sets     []string
}

func newRecordingStore() *recordingStore {
	return &recordingStore{payloads: make(map[string]string)}
}

func (s *recordingStore) Get(ctx context.Context, key string) (string, error) {
	s.gets = append(s.gets, key)
	if s.getErr != nil {
		return "", s.getErr
	}
	payload, ok := s.payloads[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return payload, nil
}

func (s *recordingStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	s.sets = append(s.sets, key)
	if s.setErr != nil {
		return s.setErr
	}
	s.payloads[key] = value
	return nil
}

func TestGateway_GetFoundEntry(t *testing.T) {
	store := newRecordingStore()
	store.payloads["product:036000291452"] = `{"status":"found","product":{"name":"Widget","brand":"Acme"}}`

	gw := NewGateway(store)
	entry := gw.Get(context.Background(), "product:036000291452", domain.StartBudget(time.Second))

	require.NotNil(t, entry)
	assert.True(t, entry.IsFound())
	assert.Equal(t, "Widget", entry.Product.Name)
	assert.Equal(t, "Acme", entry.Product.Brand)
}

func TestGateway_GetNotFoundSentinel(t *testing.T) {
	store := newRecordingStore()
	store.payloads["product:036000291452"] = `{"status":"not_found"}`

	gw := NewGateway(store)
	entry := gw.Get(context.Background(), "product:036000291452", domain.StartBudget(time.Second))

	require.NotNil(t, entry)
	assert.True(t, entry.IsNotFound())
	assert.False(t, entry.IsFound())
}

func TestGateway_ZeroBudgetSkipsIO(t *testing.T) {
	store := newRecordingStore()
	gw := NewGateway(store)
	budget := domain.StartBudget(0)

	entry := gw.Get(context.Background(), "k", budget)
	gw.Set(context.Background(), "k", &domain.CacheEntry{Status: domain.CacheStatusNotFound}, time.Hour, budget)

	assert.Nil(t, entry)
	assert.Empty(t, store.gets, "Get must not reach the store on an exhausted budget")
	assert.Empty(t, store.sets, "Set must not reach the store on an exhausted budget")
}

func TestGateway_StoreFailureDegradesToMiss(t *testing.T) {
	store := newRecordingStore()
	store.getErr = domain.ErrCacheUnavailable

	gw := NewGateway(store)
	entry := gw.Get(context.Background(), "k", domain.StartBudget(time.Second))

	assert.Nil(t, entry)
}

func TestGateway_MalformedPayloadDegradesToMiss(t *testing.T) {
	store := newRecordingStore()
	store.payloads["k"] = `{"status":`

	gw := NewGateway(store)
	assert.Nil(t, gw.Get(context.Background(), "k", domain.StartBudget(time.Second)))
}

func TestGateway_UnknownStatusDegradesToMiss(t *testing.T) {
	store := newRecordingStore()
	store.payloads["k"] = `{"status":"error"}`

	gw := NewGateway(store)
	assert.Nil(t, gw.Get(context.Background(), "k", domain.StartBudget(time.Second)))
}

func TestGateway_SetRoundTrip(t *testing.T) {
	store := newRecordingStore()
	gw := NewGateway(store)
	budget := domain.StartBudget(time.Second)

	entry := &domain.CacheEntry{
		Status: domain.CacheStatusFound,
		Product: &domain.ProductInfo{
			Name:              "Widget",
			Source:            domain.SourceUPCItemDB,
			NormalizedBarcode: "036000291452",
		},
	}
	gw.Set(context.Background(), "product:036000291452", entry, 24*time.Hour, budget)

	got := gw.Get(context.Background(), "product:036000291452", budget)
	require.NotNil(t, got)
	require.True(t, got.IsFound())
	assert.Equal(t, entry.Product, got.Product)
}

func TestGateway_SetFailureIsSwallowed(t *testing.T) {
	store := newRecordingStore()
	store.setErr = domain.ErrCacheUnavailable

	gw := NewGateway(store)
	gw.Set(context.Background(), "k", &domain.CacheEntry{Status: domain.CacheStatusNotFound}, time.Hour, domain.StartBudget(time.Second))

	assert.Len(t, store.sets, 1)
}

func TestGateway_NilStore(t *testing.T) {
	gw := NewGateway(nil)
	budget := domain.StartBudget(time.Second)

	assert.Nil(t, gw.Get(context.Background(), "k", budget))
	gw.Set(context.Background(), "k", &domain.CacheEntry{Status: domain.CacheStatusNotFound}, time.Hour, budget)
}
