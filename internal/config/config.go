package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	API      APIConfig
	Server   ServerConfig
	LogLevel string
}

// APIConfig holds sentence API settings
type APIConfig struct {
	URL              string
	Key              string
	Timeout          time.Duration
	FetchConcurrency int
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string
	Port            string
	MaxUploadSize   int64
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeout, err := getDuration("API_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}
	concurrency, err := getInt("FETCH_CONCURRENCY", 0)
	if err != nil {
		return nil, err
	}
	maxUpload, err := getInt("MAX_UPLOAD_SIZE", 10<<20)
	if err != nil {
		return nil, err
	}
	shutdown, err := getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		API: APIConfig{
			URL:              os.Getenv("API_URL"),
			Key:              os.Getenv("API_KEY"),
			Timeout:          timeout,
			FetchConcurrency: concurrency,
		},
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnv("SERVER_PORT", "8000"),
			MaxUploadSize:   int64(maxUpload),
			ShutdownTimeout: shutdown,
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.API.URL == "" {
		return nil, fmt.Errorf("API_URL is required")
	}
	if cfg.API.Key == "" {
		return nil, fmt.Errorf("API_KEY is required")
	}
	if cfg.API.FetchConcurrency < 0 {
		return nil, fmt.Errorf("FETCH_CONCURRENCY must be >= 0 (got %d)", cfg.API.FetchConcurrency)
	}
	if cfg.Server.MaxUploadSize <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_SIZE must be > 0 (got %d)", cfg.Server.MaxUploadSize)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, raw, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	// Bare "0" is accepted by time.ParseDuration
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}
