// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// Numeric constraints enforced by [Config.validate].
const (
	minPort = 1
	maxPort = 65535

	minRateLimitWindowMS    = 1000
	minRateLimitMaxRequests = 1
)

// requireExplicitSecret rejects a production environment that did not supply
// its own JWT signing secret. envCfg holds only values read from the
// environment, so an empty JWTSecret here means the variable was absent (or
// blank) — a condition the default merge would otherwise silently paper over
// with the development placeholder.
func requireExplicitSecret(envCfg *Config) error {
	mode := envCfg.Env
	if mode == "" {
		mode = defaultEnv
	}

	if mode == EnvProduction && envCfg.JWTSecret == "" {
		return ErrSecretRequired
	}

	return nil
}

// validate checks that the merged record satisfies all numeric and
// mode-dependent invariants. Checks run in a fixed order and short-circuit on
// the first violation so the caller always sees a single, precise failure.
func (cfg *Config) validate() error {
	if cfg.Port < minPort || cfg.Port > maxPort {
		return fmt.Errorf("%w: got %d, valid range is %d-%d",
			ErrPortOutOfRange, cfg.Port, minPort, maxPort)
	}

	if cfg.RateLimitWindowMS < minRateLimitWindowMS {
		return fmt.Errorf("%w: got %d ms, minimum is %d ms",
			ErrRateLimitWindowTooSmall, cfg.RateLimitWindowMS, minRateLimitWindowMS)
	}

	if cfg.RateLimitMaxRequests < minRateLimitMaxRequests {
		return fmt.Errorf("%w: got %d, minimum is %d",
			ErrRateLimitMaxTooSmall, cfg.RateLimitMaxRequests, minRateLimitMaxRequests)
	}

	// Distinct from the assembly-time absence check: this catches a
	// production deployment that set JWT_SECRET to the literal placeholder.
	if cfg.IsProduction() && cfg.JWTSecret == PlaceholderJWTSecret {
		return ErrPlaceholderSecretInProduction
	}

	return nil
}
