package main

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the CLI configuration loaded from environment variables.
type Config struct {
	AppName  string `env:"FLAGCACHE_APP_NAME" envDefault:"default"`
	Backend  string `env:"FLAGCACHE_BACKEND" envDefault:"sqlite"`
	LogLevel string `env:"FLAGCACHE_LOG_LEVEL" envDefault:"warn"` // debug, info, warn, error

	// RetryAttempts bounds attempts on transient backend errors; 1 disables retry.
	RetryAttempts int `env:"FLAGCACHE_RETRY_ATTEMPTS" envDefault:"3"`

	SQLitePath  string `env:"FLAGCACHE_SQLITE_PATH" envDefault:"flagcache.db"`
	PostgresURL string `env:"FLAGCACHE_POSTGRES_URL"`

	NATSURL    string `env:"FLAGCACHE_NATS_URL" envDefault:"nats://127.0.0.1:4222"`
	NATSBucket string `env:"FLAGCACHE_NATS_BUCKET" envDefault:"flag_cache"`

	S3Bucket   string `env:"FLAGCACHE_S3_BUCKET"`
	S3Prefix   string `env:"FLAGCACHE_S3_PREFIX" envDefault:"flagcache/"`
	S3Region   string `env:"FLAGCACHE_S3_REGION" envDefault:"us-east-1"`
	S3Endpoint string `env:"FLAGCACHE_S3_ENDPOINT"` // custom endpoint for MinIO
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load() // Load .env file if present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks that the selected backend is fully configured.
func (c *Config) Validate() error {
	if c.AppName == "" {
		return fmt.Errorf("FLAGCACHE_APP_NAME is required")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("FLAGCACHE_RETRY_ATTEMPTS must be at least 1")
	}

	switch c.Backend {
	case "memory":
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("FLAGCACHE_SQLITE_PATH is required for sqlite backend")
		}
	case "postgres":
		if c.PostgresURL == "" {
			return fmt.Errorf("FLAGCACHE_POSTGRES_URL is required for postgres backend")
		}
	case "nats":
		if c.NATSURL == "" {
			return fmt.Errorf("FLAGCACHE_NATS_URL is required for nats backend")
		}
	case "s3":
		if c.S3Bucket == "" {
			return fmt.Errorf("FLAGCACHE_S3_BUCKET is required for s3 backend")
		}
	default:
		return fmt.Errorf("unknown backend: %s (must be memory, sqlite, postgres, nats, or s3)", c.Backend)
	}

	return nil
}

// Level parses LogLevel, falling back to warn.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}
