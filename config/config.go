package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Lookup    LookupConfig
	Cache     CacheConfig
	Providers ProvidersConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LookupConfig holds lookup engine configuration
type LookupConfig struct {
	DefaultTimeout time.Duration `mapstructure:"default_timeout"`
	CacheKeyPrefix string        `mapstructure:"cache_key_prefix"`
	FoundTTL       time.Duration `mapstructure:"found_ttl"`
	NotFoundTTL    time.Duration `mapstructure:"not_found_ttl"`
}

// CacheConfig holds cache store configuration
type CacheConfig struct {
	Type     string `mapstructure:"type"` // "memory" or "redis"
	RedisURL string `mapstructure:"redis_url"`
}

// ProvidersConfig holds configuration for every external product source.
// Credentials are optional: a provider without them is disabled, not fatal.
type ProvidersConfig struct {
	BarcodeLookup BarcodeLookupConfig `mapstructure:"barcodelookup"`
	OpenFoodFacts OpenFoodFactsConfig `mapstructure:"openfoodfacts"`
	UPCItemDB     UPCItemDBConfig     `mapstructure:"upcitemdb"`
}

// BarcodeLookupConfig holds Barcode Lookup API configuration
type BarcodeLookupConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// OpenFoodFactsConfig holds Open Food Facts API configuration
type OpenFoodFactsConfig struct {
	UserAgent string `mapstructure:"user_agent"`
	BaseURL   string `mapstructure:"base_url"`
}

// UPCItemDBConfig holds UPCitemdb API configuration
type UPCItemDBConfig struct {
	UserKey string `mapstructure:"user_key"`
	KeyType string `mapstructure:"key_type"`
	BaseURL string `mapstructure:"base_url"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shelfscan/")

	// Environment variable settings
	v.SetEnvPrefix("SHELFSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Lookup defaults
	v.SetDefault("lookup.default_timeout", "5s")
	v.SetDefault("lookup.cache_key_prefix", "product:")
	v.SetDefault("lookup.found_ttl", "168h") // 7 days
	v.SetDefault("lookup.not_found_ttl", "1h")

	// Cache defaults
	v.SetDefault("cache.type", "memory")

	// Provider defaults
	v.SetDefault("providers.barcodelookup.base_url", "https://api.barcodelookup.com/v3")
	v.SetDefault("providers.openfoodfacts.base_url", "https://world.openfoodfacts.org")
	v.SetDefault("providers.upcitemdb.base_url", "https://api.upcitemdb.com")
	v.SetDefault("providers.upcitemdb.key_type", "3scale")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	if config.Lookup.DefaultTimeout <= 0 {
		return fmt.Errorf("lookup default timeout must be positive, got: %s", config.Lookup.DefaultTimeout)
	}

	if config.Lookup.NotFoundTTL > config.Lookup.FoundTTL {
		return fmt.Errorf("not-found TTL (%s) must not exceed found TTL (%s)", config.Lookup.NotFoundTTL, config.Lookup.FoundTTL)
	}

	return nil
}
