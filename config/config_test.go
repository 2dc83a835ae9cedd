package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DATABASE_URL", "NATS_URL", "HTTP_ADDRESS", "ALLOWED_ORIGINS", "JWT_SECRET", "JWT_ISSUER", "ENV", "LOG_LEVEL", "METRICS_ENABLED"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
postgres:
  dsn: postgres://file/db
nats:
  url: nats://file:4222
http:
  address: ":9000"
  allowed_origins: ["https://league.example"]
jwt:
  secret: from-file
observability:
  environment: production
  metrics_enabled: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://file/db", cfg.Postgres.DSN)
	assert.Equal(t, "nats://file:4222", cfg.NATS.URL)
	assert.Equal(t, ":9000", cfg.HTTP.Address)
	assert.Equal(t, []string{"https://league.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.DefaultTTL)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.True(t, cfg.Observability.MetricsEnabled)
	assert.Equal(t, 10.0, cfg.HTTP.RateLimit)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "postgres:\n  dsn: postgres://file/db\n")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env/db", cfg.Postgres.DSN)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
}

func TestLoadConfigFallsBackToEnv(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	t.Run("requires database url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		_, err := LoadConfig(missing)
		assert.EqualError(t, err, "DATABASE_URL environment variable not set")
	})

	t.Run("env only", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://env/db")
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("NATS_URL", "")
		t.Setenv("METRICS_ENABLED", "")

		cfg, err := LoadConfig(missing)
		require.NoError(t, err)
		assert.Empty(t, cfg.NATS.URL)
		assert.Equal(t, ":8080", cfg.HTTP.Address)
		assert.True(t, cfg.Observability.MetricsEnabled)
		assert.Equal(t, "development", cfg.Observability.Environment)
	})
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "postgres: [unterminated")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigEnvOnlyRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://env/db")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.EqualError(t, err, "JWT_SECRET environment variable not set")
}

func TestLoadConfigMetricsCanBeDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.False(t, cfg.Observability.MetricsEnabled)
}
