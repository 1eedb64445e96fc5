package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shelfscan/backend/config"
	httpDelivery "github.com/shelfscan/backend/internal/delivery/http"
	"github.com/shelfscan/backend/internal/domain"
	"github.com/shelfscan/backend/internal/infrastructure/cache"
	"github.com/shelfscan/backend/internal/infrastructure/providers"
	"github.com/shelfscan/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShelfScan Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	// Initialize the cache store
	var store domain.CacheStore
	switch cfg.Cache.Type {
	case "redis":
		redisStore, err := cache.NewRedisStore(cfg.Cache.RedisURL)
		if err != nil {
			log.Fatalf("Failed to create Redis store: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisStore.Ping(ctx); err != nil {
			log.Printf("WARNING: Redis unreachable at startup, lookups will run uncached: %v", err)
		}
		cancel()
		defer redisStore.Close()
		store = redisStore
	default:
		store = cache.NewMemoryStore()
	}
	gateway := cache.NewGateway(store)

	// Build the provider chain: broadest (paid) catalog first, then the
	// free public ones.
	chain := []domain.Provider{
		providers.NewBarcodeLookup(cfg.Providers.BarcodeLookup.APIKey, cfg.Providers.BarcodeLookup.BaseURL),
		providers.NewOpenFoodFacts(cfg.Providers.OpenFoodFacts.UserAgent, cfg.Providers.OpenFoodFacts.BaseURL),
		providers.NewUPCItemDB(cfg.Providers.UPCItemDB.UserKey, cfg.Providers.UPCItemDB.KeyType, cfg.Providers.UPCItemDB.BaseURL),
	}

	if cfg.Providers.BarcodeLookup.APIKey == "" {
		log.Printf("WARNING: Barcode Lookup API key not configured - provider disabled")
	}
	if cfg.Providers.OpenFoodFacts.UserAgent == "" {
		log.Printf("WARNING: Open Food Facts user agent not configured - provider disabled")
	}

	// Initialize usecase layer
	lookupService := usecase.NewLookupService(gateway, chain, usecase.LookupServiceConfig{
		DefaultTimeout: cfg.Lookup.DefaultTimeout,
		CacheKeyPrefix: cfg.Lookup.CacheKeyPrefix,
		FoundTTL:       cfg.Lookup.FoundTTL,
		NotFoundTTL:    cfg.Lookup.NotFoundTTL,
	})

	log.Printf("Lookup: timeout=%s, found_ttl=%s, not_found_ttl=%s",
		cfg.Lookup.DefaultTimeout, cfg.Lookup.FoundTTL, cfg.Lookup.NotFoundTTL)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(lookupService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
