// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "path/filepath"

// Built-in defaults applied to every field an environment variable does not
// override. Every field has a textual default so a completely empty
// environment still yields a valid development configuration.
const (
	defaultEnv                  = EnvDevelopment
	defaultPort                 = 3000
	defaultHost                 = "0.0.0.0"
	defaultJWTExpiresIn         = "24h"
	defaultRefreshExpiresIn     = "7d"
	defaultDBPath               = "data/notekeeper.db"
	defaultLogLevel             = "info"
	defaultRateLimitWindowMS    = 60000
	defaultRateLimitMaxRequests = 100
)

// defaultCORSOrigins are the two localhost origins a local frontend dev
// server is typically reachable at.
var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// defaultConfig returns a fresh record carrying every built-in default.
// The CORS origin slice is copied so callers can never alias the package
// level default.
func defaultConfig() *Config {
	return &Config{
		Env:                   defaultEnv,
		Port:                  defaultPort,
		Host:                  defaultHost,
		CORSOrigins:           append([]string(nil), defaultCORSOrigins...),
		JWTSecret:             PlaceholderJWTSecret,
		JWTExpiresIn:          defaultJWTExpiresIn,
		RefreshTokenExpiresIn: defaultRefreshExpiresIn,
		DBPath:                defaultDBPath,
		LogLevel:              defaultLogLevel,
		RateLimitWindowMS:     defaultRateLimitWindowMS,
		RateLimitMaxRequests:  defaultRateLimitMaxRequests,
	}
}

// resolveDBPath rewrites a relative DBPath to an absolute one so that every
// consumer sees the same resolved location regardless of its own working
// directory handling.
func (cfg *Config) resolveDBPath() error {
	abs, err := filepath.Abs(cfg.DBPath)
	if err != nil {
		return err
	}

	cfg.DBPath = abs
	return nil
}
