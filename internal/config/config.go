// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Recognized deployment environment modes. The mode controls which validation
// rules are mandatory: production deployments must supply their own JWT
// signing secret, while development and test fall back to the placeholder.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// PlaceholderJWTSecret is the well-known non-secret default signing key used
// outside production. Its presence in a production deployment is itself a
// configuration error: it means the operator forgot to set JWT_SECRET.
const PlaceholderJWTSecret = "development-secret-change-in-production"

// Config is the flat, immutable configuration record of the server process.
// It is populated once by [Load] from environment variables merged over
// built-in defaults and is shared read-only by all consumers.
//
// Struct tags map fields to their environment variables via caarlos0/env.
type Config struct {
	// Env is the deployment environment mode ("development", "production",
	// "test"). Production tightens the JWT secret checks.
	// Env var: NODE_ENV. Default: "development".
	Env string `env:"NODE_ENV"`

	// Port is the TCP port the HTTP server listens on. Must be in 1-65535.
	// Env var: PORT. Default: 3000.
	Port int `env:"PORT"`

	// Host is the address the HTTP server binds to.
	// Env var: HOST. Default: "0.0.0.0".
	Host string `env:"HOST"`

	// CORSOrigins is the ordered list of origins allowed to make
	// cross-origin requests, read from a comma-separated value.
	// Env var: CORS_ORIGINS. Default: two localhost origins.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// JWTSecret is the HMAC key used to sign and verify JWT tokens.
	// Must be kept confidential and must be supplied explicitly in
	// production.
	// Env var: JWT_SECRET. Default: [PlaceholderJWTSecret].
	JWTSecret string `env:"JWT_SECRET"`

	// JWTExpiresIn is the access token lifetime as a duration expression
	// (e.g. "24h", "15m"). Parsed lazily via [Config.AccessTokenTTL].
	// Env var: JWT_EXPIRES_IN. Default: "24h".
	JWTExpiresIn string `env:"JWT_EXPIRES_IN"`

	// RefreshTokenExpiresIn is the refresh token lifetime as a duration
	// expression; the "d" (days) suffix is supported (e.g. "7d").
	// Env var: REFRESH_TOKEN_EXPIRES_IN. Default: "7d".
	RefreshTokenExpiresIn string `env:"REFRESH_TOKEN_EXPIRES_IN"`

	// DBPath is the filesystem path of the sqlite database file. Relative
	// paths are resolved to absolute ones during [Load].
	// Env var: DB_PATH. Default: "data/notekeeper.db" under the working
	// directory.
	DBPath string `env:"DB_PATH"`

	// LogLevel is the minimum zerolog level emitted by the process
	// ("debug", "info", "warn", "error").
	// Env var: LOG_LEVEL. Default: "info".
	LogLevel string `env:"LOG_LEVEL"`

	// RateLimitWindowMS is the rate-limiting window in milliseconds.
	// Must be at least 1000.
	// Env var: RATE_LIMIT_WINDOW_MS. Default: 60000.
	RateLimitWindowMS int `env:"RATE_LIMIT_WINDOW_MS"`

	// RateLimitMaxRequests is the number of requests allowed per client
	// within one rate-limiting window. Must be at least 1.
	// Env var: RATE_LIMIT_MAX_REQUESTS. Default: 100.
	RateLimitMaxRequests int `env:"RATE_LIMIT_MAX_REQUESTS"`
}

// Load builds the configuration record from the current environment snapshot.
//
// Pipeline: parse environment variables, merge built-in defaults underneath,
// resolve the database path, validate. Each step is fail-fast; the returned
// error always identifies the offending variable and, where applicable, the
// offending value and the acceptable range.
//
// Load performs no I/O beyond reading the process environment and resolving
// one filesystem path. Calling it twice against an unchanged environment
// yields field-wise equal records.
func Load() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}

// IsProduction reports whether the server runs in production mode.
func (cfg *Config) IsProduction() bool {
	return cfg.Env == EnvProduction
}

// ListenAddr returns the "host:port" address the HTTP server binds to.
func (cfg *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}

// RateLimitWindow returns the rate-limiting window as a time.Duration.
func (cfg *Config) RateLimitWindow() time.Duration {
	return time.Duration(cfg.RateLimitWindowMS) * time.Millisecond
}

// AccessTokenTTL parses JWTExpiresIn into a duration.
// No range constraint is enforced at load time; consumers surface the parse
// error at construction.
func (cfg *Config) AccessTokenTTL() (time.Duration, error) {
	return ParseExpiry(cfg.JWTExpiresIn)
}

// RefreshTokenTTL parses RefreshTokenExpiresIn into a duration.
func (cfg *Config) RefreshTokenTTL() (time.Duration, error) {
	return ParseExpiry(cfg.RefreshTokenExpiresIn)
}
