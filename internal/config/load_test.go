package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-thats-32-bytes-long!"

// setRequiredEnv sets the two settings without safe defaults.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TASKLIST_DATABASE_URL", "postgres://localhost:5432/tasklist_test")
	t.Setenv("TASKLIST_AUTH_JWT_SECRET", testSecret)
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, "postgres://localhost:5432/tasklist_test", cfg.Database.URL)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TASKLIST_SERVER_PORT", "9999")
	t.Setenv("TASKLIST_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TASKLIST_AUTH_TOKEN_LIFETIME_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing database URL", func(t *testing.T) {
		t.Setenv("TASKLIST_AUTH_JWT_SECRET", testSecret)

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("short JWT secret", func(t *testing.T) {
		t.Setenv("TASKLIST_DATABASE_URL", "postgres://localhost:5432/tasklist_test")
		t.Setenv("TASKLIST_AUTH_JWT_SECRET", "too-short")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TASKLIST_SERVER_LOG_LEVEL", "verbose")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid port", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TASKLIST_SERVER_PORT", "70000")

		_, err := Load()
		assert.Error(t, err)
	})
}
