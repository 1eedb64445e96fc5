package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
	}
	if cfg.Lookup.DefaultTimeout != 5*time.Second {
		t.Errorf("Lookup.DefaultTimeout = %v, want 5s", cfg.Lookup.DefaultTimeout)
	}
	if cfg.Lookup.CacheKeyPrefix != "product:" {
		t.Errorf("Lookup.CacheKeyPrefix = %s, want product:", cfg.Lookup.CacheKeyPrefix)
	}
	if cfg.Lookup.FoundTTL != 168*time.Hour {
		t.Errorf("Lookup.FoundTTL = %v, want 168h", cfg.Lookup.FoundTTL)
	}
	if cfg.Lookup.NotFoundTTL != 1*time.Hour {
		t.Errorf("Lookup.NotFoundTTL = %v, want 1h", cfg.Lookup.NotFoundTTL)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
	}
	if cfg.Providers.BarcodeLookup.BaseURL != "https://api.barcodelookup.com/v3" {
		t.Errorf("Providers.BarcodeLookup.BaseURL = %s", cfg.Providers.BarcodeLookup.BaseURL)
	}
	if cfg.Providers.BarcodeLookup.APIKey != "" {
		t.Errorf("Providers.BarcodeLookup.APIKey = %s, want empty", cfg.Providers.BarcodeLookup.APIKey)
	}
	if cfg.Providers.UPCItemDB.KeyType != "3scale" {
		t.Errorf("Providers.UPCItemDB.KeyType = %s, want 3scale", cfg.Providers.UPCItemDB.KeyType)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SHELFSCAN_SERVER_PORT", "9090")
	t.Setenv("SHELFSCAN_SERVER_ENVIRONMENT", "production")
	t.Setenv("SHELFSCAN_LOOKUP_DEFAULT_TIMEOUT", "2s")
	t.Setenv("SHELFSCAN_LOOKUP_NOT_FOUND_TTL", "30m")
	t.Setenv("SHELFSCAN_CACHE_TYPE", "redis")
	t.Setenv("SHELFSCAN_CACHE_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SHELFSCAN_PROVIDERS_BARCODELOOKUP_API_KEY", "bl-key")
	t.Setenv("SHELFSCAN_PROVIDERS_OPENFOODFACTS_USER_AGENT", "shelfscan/1.0")
	t.Setenv("SHELFSCAN_PROVIDERS_UPCITEMDB_USER_KEY", "uidb-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Environment != "production" {
		t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
	}
	if cfg.Lookup.DefaultTimeout != 2*time.Second {
		t.Errorf("Lookup.DefaultTimeout = %v, want 2s", cfg.Lookup.DefaultTimeout)
	}
	if cfg.Lookup.NotFoundTTL != 30*time.Minute {
		t.Errorf("Lookup.NotFoundTTL = %v, want 30m", cfg.Lookup.NotFoundTTL)
	}
	if cfg.Cache.Type != "redis" {
		t.Errorf("Cache.Type = %s, want redis", cfg.Cache.Type)
	}
	if cfg.Cache.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("Cache.RedisURL = %s", cfg.Cache.RedisURL)
	}
	if cfg.Providers.BarcodeLookup.APIKey != "bl-key" {
		t.Errorf("Providers.BarcodeLookup.APIKey = %s, want bl-key", cfg.Providers.BarcodeLookup.APIKey)
	}
	if cfg.Providers.OpenFoodFacts.UserAgent != "shelfscan/1.0" {
		t.Errorf("Providers.OpenFoodFacts.UserAgent = %s, want shelfscan/1.0", cfg.Providers.OpenFoodFacts.UserAgent)
	}
	if cfg.Providers.UPCItemDB.UserKey != "uidb-key" {
		t.Errorf("Providers.UPCItemDB.UserKey = %s, want uidb-key", cfg.Providers.UPCItemDB.UserKey)
	}
}

func TestLoad_InvalidCacheType(t *testing.T) {
	t.Setenv("SHELFSCAN_CACHE_TYPE", "memcached")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() error = nil, want validation error")
	}
	if !strings.Contains(err.Error(), "cache type") {
		t.Errorf("Load() error = %v, want cache type message", err)
	}
}

func TestLoad_RedisRequiresURL(t *testing.T) {
	t.Setenv("SHELFSCAN_CACHE_TYPE", "redis")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() error = nil, want validation error")
	}
}

func TestLoad_RejectsInvertedTTLs(t *testing.T) {
	t.Setenv("SHELFSCAN_LOOKUP_FOUND_TTL", "10m")
	t.Setenv("SHELFSCAN_LOOKUP_NOT_FOUND_TTL", "1h")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() error = nil, want validation error")
	}
}
