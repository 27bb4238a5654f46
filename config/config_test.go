package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/langbasics/pkg/logger"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_NAME", "APP_ENV", "APP_VERSION", "LOG_LEVEL", "LOG_CALLER"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "langbasics", cfg.App.Name)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.Equal(t, "0.1.0", cfg.App.Version)
	assert.Equal(t, "warn", cfg.Observability.LogLevel)
	assert.False(t, cfg.Observability.LogCaller)

	opts := cfg.LoggerOptions()
	assert.Equal(t, logger.LevelWarn, opts.Level)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_CALLER", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.App.Environment)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	opts := cfg.LoggerOptions()
	assert.Equal(t, logger.LevelDebug, opts.Level)
	assert.True(t, opts.AddCaller)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "staging")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)

	assert.Contains(t, err.Error(), "APP_ENV")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestGetEnvBool_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("LOG_CALLER", "maybe")

	assert.True(t, getEnvBool("LOG_CALLER", true))
}
