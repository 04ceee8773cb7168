// Package config loads and validates the server configuration.
//
// Configuration is read from process environment variables and merged on top
// of built-in defaults (environment values win, defaults fill the gaps). The
// entry point is [Load], which returns a fully populated, validated *Config
// or a descriptive error. Validation is fail-fast: the first violated
// constraint aborts loading and no partially valid record is ever returned.
//
// The record is never mutated after Load returns. The bootstrap code in
// cmd/server constructs it exactly once and passes it down explicitly to
// every component that needs it; there is no package-level singleton.
package config
