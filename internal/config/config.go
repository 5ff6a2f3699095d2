package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	// TablesPath optionally points at a JSON file of enchantment table
	// overrides applied on top of the built-in defaults at startup.
	TablesPath string

	// BonusStrategy is "two_draws" or "single_draw".
	BonusStrategy string
	EagerDefaults bool

	CacheSize int
	CacheTTL  time.Duration

	APIKey string // API key protecting the catalog write endpoints
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		ServiceName:   getEnv("SERVICE_NAME", "enchantd"),
		Version:       getEnv("SERVICE_VERSION", "dev"),
		Environment:   getEnv("ENVIRONMENT", "dev"),
		TablesPath:    getEnv("TABLES_PATH", ""),
		BonusStrategy: getEnv("BONUS_STRATEGY", BonusStrategyTwoDraws),
		APIKey:        getEnv("API_KEY", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	eagerStr := getEnv("EAGER_DEFAULTS", "false")
	eager, err := strconv.ParseBool(eagerStr)
	if err != nil {
		return nil, fmt.Errorf("invalid EAGER_DEFAULTS value: %w", err)
	}
	cfg.EagerDefaults = eager

	sizeStr := getEnv("CACHE_SIZE", strconv.Itoa(DefaultCacheSize))
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE value: %w", err)
	}
	cfg.CacheSize = size

	ttlStr := getEnv("CACHE_TTL", DefaultCacheTTL)
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL value: %w", err)
	}
	cfg.CacheTTL = ttl

	if cfg.BonusStrategy != BonusStrategyTwoDraws && cfg.BonusStrategy != BonusStrategySingleDraw {
		return nil, fmt.Errorf("invalid BONUS_STRATEGY value: %q", cfg.BonusStrategy)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
