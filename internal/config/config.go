// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"BLOGHUB_DB_PATH" envDefault:"./data/bloghub.db"`
	SessionSecret string `env:"BLOGHUB_SESSION_SECRET,required"`
	ServerHost    string `env:"BLOGHUB_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"BLOGHUB_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"BLOGHUB_ENV" envDefault:"development"`
	LogLevel      string `env:"BLOGHUB_LOG_LEVEL" envDefault:"info"`

	// DemoPassword is the shared secret for the fixture accounts. It is
	// hashed at startup; only the hash is kept in memory.
	DemoPassword string `env:"BLOGHUB_DEMO_PASSWORD" envDefault:"password123"`

	// SeedDelayMS is the simulated load latency before the post collection
	// becomes available. Queries during that window see an empty collection.
	SeedDelayMS int `env:"BLOGHUB_SEED_DELAY_MS" envDefault:"1000"`

	// Cache configuration for rendered post HTML
	RedisURL     string `env:"BLOGHUB_REDIS_URL"`                        // Optional Redis URL for distributed caching
	CachePrefix  string `env:"BLOGHUB_CACHE_PREFIX" envDefault:"bloghub:"`
	CacheTTL     int    `env:"BLOGHUB_CACHE_TTL" envDefault:"3600"`      // Default cache TTL in seconds
	CacheMaxSize int    `env:"BLOGHUB_CACHE_MAX_SIZE" envDefault:"10000"`

	// Demo mode: periodically reset the post collection to fixtures
	DemoMode      bool   `env:"BLOGHUB_DEMO_MODE" envDefault:"false"`
	DemoResetCron string `env:"BLOGHUB_DEMO_RESET_CRON" envDefault:"0 * * * *"`

	// AuditLogSize caps the in-memory audit log entry count.
	AuditLogSize int `env:"BLOGHUB_AUDIT_LOG_SIZE" envDefault:"1000"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// SeedDelay returns the simulated load latency as a duration.
func (c Config) SeedDelay() time.Duration {
	return time.Duration(c.SeedDelayMS) * time.Millisecond
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("BLOGHUB_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("BLOGHUB_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("BLOGHUB_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
