package config

import "errors"

// Validation errors returned by [Load] when the environment describes an
// unusable configuration. Callers should match them with [errors.Is]; the
// values returned by Load wrap these sentinels together with the offending
// value and the acceptable range where applicable.
var (
	// ErrSecretRequired indicates a production deployment that supplied no
	// JWT_SECRET at all. Raised during record assembly, before the general
	// validation pass.
	ErrSecretRequired = errors.New("JWT_SECRET is required in production")

	// ErrPortOutOfRange indicates a PORT value outside 1-65535.
	ErrPortOutOfRange = errors.New("PORT is out of range")

	// ErrRateLimitWindowTooSmall indicates a RATE_LIMIT_WINDOW_MS value
	// below the 1000 ms minimum.
	ErrRateLimitWindowTooSmall = errors.New("RATE_LIMIT_WINDOW_MS is too small")

	// ErrRateLimitMaxTooSmall indicates a RATE_LIMIT_MAX_REQUESTS value
	// below 1.
	ErrRateLimitMaxTooSmall = errors.New("RATE_LIMIT_MAX_REQUESTS is too small")

	// ErrPlaceholderSecretInProduction indicates that JWT_SECRET still holds
	// the development placeholder in a production deployment.
	ErrPlaceholderSecretInProduction = errors.New(
		"JWT_SECRET still holds the development placeholder; set a real secret in production")

	// ErrInvalidExpiry indicates a token lifetime expression that cannot be
	// parsed as a duration (see [ParseExpiry]).
	ErrInvalidExpiry = errors.New("invalid duration expression")
)
