package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Database configuration
	DatabaseURL string

	// Cache configuration
	CacheEnabled   bool
	CacheBackend   string // "redis" or "memory"
	CacheKeyPrefix string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisPoolSize  int

	// TTL overrides, in seconds. Zero means use the built-in default.
	CacheTTLShort    int
	CacheTTLMedium   int
	CacheTTLLong     int
	CacheTTLVeryLong int

	// Logging
	LogLevel string

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		// Cache configuration
		CacheEnabled:   getEnvBool("CACHE_ENABLED", true),
		CacheBackend:   getEnv("CACHE_BACKEND", "redis"),
		CacheKeyPrefix: getEnv("CACHE_KEY_PREFIX", "opsboard:"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPoolSize:  getEnvInt("REDIS_POOL_SIZE", 10),

		CacheTTLShort:    getEnvInt("CACHE_TTL_SHORT", 0),
		CacheTTLMedium:   getEnvInt("CACHE_TTL_MEDIUM", 0),
		CacheTTLLong:     getEnvInt("CACHE_TTL_LONG", 0),
		CacheTTLVeryLong: getEnvInt("CACHE_TTL_VERY_LONG", 0),

		// Logging and features
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig for backwards compatibility
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required in production")
		}
	}

	switch c.CacheBackend {
	case "redis", "memory":
	default:
		return fmt.Errorf("CACHE_BACKEND must be 'redis' or 'memory', got %q", c.CacheBackend)
	}

	return nil
}

// TTLOverride returns a configured TTL override, or zero when the built-in
// default should apply.
func (c *Config) TTLOverride(seconds int) time.Duration {
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
