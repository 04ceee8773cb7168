package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies the merge precedence: a field set by an
// earlier source is not overwritten by a later one, and gaps are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{Port: 8080},
		defaultConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// The explicit port survives the default merge.
	assert.Equal(t, 8080, cfg.Port)
	// Unset fields were filled from defaults.
	assert.Equal(t, defaultHost, cfg.Host)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
}

// TestBuild_DefaultsOnly verifies that defaults alone produce a valid record.
func TestBuild_DefaultsOnly(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, PlaceholderJWTSecret, cfg.JWTSecret)
}

// TestBuild_ValidationFailureReturnsNil verifies that no record is returned
// when validation fails.
func TestBuild_ValidationFailureReturnsNil(t *testing.T) {
	bad := defaultConfig()
	bad.RateLimitWindowMS = 10

	b := newConfigBuilder()
	b.configs = append(b.configs, bad)

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrRateLimitWindowTooSmall)
}

// TestWithEnv_ProductionSecretPrecondition verifies that the secret-required
// check runs during assembly, before defaults join the merge.
func TestWithEnv_ProductionSecretPrecondition(t *testing.T) {
	setEnvVars(t, map[string]string{"NODE_ENV": "production"})

	b := newConfigBuilder().withEnv()

	require.Error(t, b.err)
	assert.ErrorIs(t, b.err, ErrSecretRequired)
	assert.Empty(t, b.configs)
}

// TestDefaultConfig_CopiesCORSOrigins verifies that mutating a returned
// record cannot corrupt the package-level default origin list.
func TestDefaultConfig_CopiesCORSOrigins(t *testing.T) {
	first := defaultConfig()
	first.CORSOrigins[0] = "https://mutated.example.com"

	second := defaultConfig()
	assert.Equal(t, "http://localhost:3000", second.CORSOrigins[0])
}
