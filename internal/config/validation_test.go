// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a record that passes every validation check, for tests
// to break one field at a time.
func validConfig() *Config {
	cfg := defaultConfig()
	return cfg
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().validate())
}

func TestValidate_PortBounds(t *testing.T) {
	tests := []struct {
		name    string
		port    int
		wantErr bool
	}{
		{"lowest valid port", 1, false},
		{"highest valid port", 65535, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"above range", 65536, true},
		{"far above range", 99999, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Port = tt.port

			err := cfg.validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrPortOutOfRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_RateLimitWindow(t *testing.T) {
	tests := []struct {
		name    string
		window  int
		wantErr bool
	}{
		{"exactly one second", 1000, false},
		{"one minute", 60000, false},
		{"just below minimum", 999, true},
		{"half a second", 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.RateLimitWindowMS = tt.window

			err := cfg.validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrRateLimitWindowTooSmall)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_RateLimitMaxRequests(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimitMaxRequests = 0

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimitMaxTooSmall)
}

// TestValidate_CheckOrder verifies the short-circuit order: with several
// violations present, only the first one in check order is reported.
func TestValidate_CheckOrder(t *testing.T) {
	cfg := validConfig()
	cfg.Env = EnvProduction // placeholder secret is now also a violation
	cfg.Port = 0
	cfg.RateLimitWindowMS = 1

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPortOutOfRange)
	assert.NotErrorIs(t, err, ErrRateLimitWindowTooSmall)
	assert.NotErrorIs(t, err, ErrPlaceholderSecretInProduction)
}

func TestValidate_PlaceholderSecretOnlyInProduction(t *testing.T) {
	// Development with the placeholder is fine.
	dev := validConfig()
	assert.NoError(t, dev.validate())

	// Production with the same record is not.
	prod := validConfig()
	prod.Env = EnvProduction
	assert.ErrorIs(t, prod.validate(), ErrPlaceholderSecretInProduction)
}

func TestRequireExplicitSecret(t *testing.T) {
	tests := []struct {
		name    string
		envCfg  *Config
		wantErr bool
	}{
		{"production without secret", &Config{Env: EnvProduction}, true},
		{"production with secret", &Config{Env: EnvProduction, JWTSecret: "s3cret"}, false},
		{"development without secret", &Config{Env: EnvDevelopment}, false},
		{"mode absent defaults to development", &Config{}, false},
		{"test mode without secret", &Config{Env: EnvTest}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireExplicitSecret(tt.envCfg)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrSecretRequired)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
