package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port           string
	HTTPBindAddr   string
	Environment    string
	LoggingConfig  LoggingConfig
	DataConfig     DataConfig
	RedisConfig    RedisConfig
	CacheConfig    CacheConfig
	MetricsEnabled bool
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// DataConfig locates the airport and award chart datasets. Each location is
// a file path or an http(s) URL.
type DataConfig struct {
	AirportsFile   string
	FareChartFile  string
	SourceTimeout  time.Duration
	SourceRetryMax int
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

// CacheConfig controls the Redis response cache.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load(".env")

	sourceTimeout, err := time.ParseDuration(getEnv("SOURCE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SOURCE_TIMEOUT: %w", err)
	}
	sourceRetryMax, err := strconv.Atoi(getEnv("SOURCE_RETRY_MAX", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid SOURCE_RETRY_MAX: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cacheEnabled, _ := strconv.ParseBool(getEnv("CACHE_ENABLED", "false"))
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "1h"))
	if err != nil {
		cacheTTL = time.Hour
	}

	metricsEnabled, _ := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))

	return &Config{
		Port:         getEnv("PORT", "8080"),
		HTTPBindAddr: getEnv("HTTP_BIND_ADDR", ""),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LoggingConfig: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		DataConfig: DataConfig{
			AirportsFile:   getEnv("AIRPORTS_FILE", "GlobalAirportDatabase.txt"),
			FareChartFile:  getEnv("FARE_CHART_FILE", "AeroplanChart.csv"),
			SourceTimeout:  sourceTimeout,
			SourceRetryMax: sourceRetryMax,
		},
		RedisConfig: RedisConfig{
			Host:     getEnv("REDIS_HOST", "redis"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		CacheConfig: CacheConfig{
			Enabled: cacheEnabled,
			TTL:     cacheTTL,
			Prefix:  getEnv("CACHE_PREFIX", "award"),
		},
		MetricsEnabled: metricsEnabled,
	}, nil
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return c.HTTPBindAddr + ":" + c.Port
}

// LoadTestConfig loads test configuration
func LoadTestConfig() *Config {
	return &Config{
		Port:        "0",
		Environment: "test",
		LoggingConfig: LoggingConfig{
			Level:  "error",
			Format: "text",
		},
		DataConfig: DataConfig{
			AirportsFile:   getEnv("AIRPORTS_FILE", "testdata/airports.txt"),
			FareChartFile:  getEnv("FARE_CHART_FILE", "testdata/chart.csv"),
			SourceTimeout:  5 * time.Second,
			SourceRetryMax: 0,
		},
		RedisConfig: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		CacheConfig: CacheConfig{
			TTL:    time.Minute,
			Prefix: "award_test",
		},
	}
}

// TestConfig returns a default test configuration
func TestConfig() *Config {
	cfg := LoadTestConfig()
	cfg.MetricsEnabled = false
	return cfg
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if len(strings.TrimSpace(value)) == 0 {
		return defaultValue
	}
	return strings.TrimSpace(value) // Trim whitespace before returning
}
