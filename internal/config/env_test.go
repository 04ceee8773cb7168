// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"NODE_ENV":                 "production",
		"PORT":                     "8080",
		"HOST":                     "127.0.0.1",
		"CORS_ORIGINS":             "https://app.example.com,https://admin.example.com",
		"JWT_SECRET":               "real-secret",
		"JWT_EXPIRES_IN":           "1h",
		"REFRESH_TOKEN_EXPIRES_IN": "30d",
		"DB_PATH":                  "/var/lib/notekeeper/db.sqlite",
		"LOG_LEVEL":                "debug",
		"RATE_LIMIT_WINDOW_MS":     "30000",
		"RATE_LIMIT_MAX_REQUESTS":  "50",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "real-secret", cfg.JWTSecret)
	assert.Equal(t, "1h", cfg.JWTExpiresIn)
	assert.Equal(t, "30d", cfg.RefreshTokenExpiresIn)
	assert.Equal(t, "/var/lib/notekeeper/db.sqlite", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30000, cfg.RateLimitWindowMS)
	assert.Equal(t, 50, cfg.RateLimitMaxRequests)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"PORT":       "4000",
		"JWT_SECRET": "jwt_secret",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "jwt_secret", cfg.JWTSecret)

	// Everything else untouched
	assert.Empty(t, cfg.Env)
	assert.Empty(t, cfg.Host)
	assert.Empty(t, cfg.CORSOrigins)
	assert.Empty(t, cfg.JWTExpiresIn)
	assert.Empty(t, cfg.RefreshTokenExpiresIn)
	assert.Empty(t, cfg.DBPath)
	assert.Empty(t, cfg.LogLevel)
	assert.Zero(t, cfg.RateLimitWindowMS)
	assert.Zero(t, cfg.RateLimitMaxRequests)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Config{}, *cfg)
}

func TestParseEnv_NonNumericPort(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"PORT": "abc"})

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert: a present-but-unparseable numeric variable is rejected, not
	// silently coerced to zero.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Port")
}

func TestParseEnv_NonNumericRateLimitWindow(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"RATE_LIMIT_WINDOW_MS": "one minute"})

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RateLimitWindowMS")
}

func TestParseEnv_CORSOriginsSingleValue(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"CORS_ORIGINS": "https://only.example.com"})

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"https://only.example.com"}, cfg.CORSOrigins)
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"NODE_ENV",
		"PORT",
		"HOST",
		"CORS_ORIGINS",
		"JWT_SECRET",
		"JWT_EXPIRES_IN",
		"REFRESH_TOKEN_EXPIRES_IN",
		"DB_PATH",
		"LOG_LEVEL",
		"RATE_LIMIT_WINDOW_MS",
		"RATE_LIMIT_MAX_REQUESTS",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
