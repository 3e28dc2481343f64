package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("REDIS_ADDRESS", "")
	t.Setenv("DOCUMENT_LOCK_TTL", "")
	t.Setenv("DEFAULT_TIMEZONE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 30*time.Second, cfg.DocumentLockTTL)
	assert.Equal(t, "Asia/Kolkata", cfg.DefaultTimezone)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("REDIS_ADDRESS", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("DOCUMENT_LOCK_TTL", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("DEFAULT_TIMEZONE", "Europe/Berlin")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 5*time.Second, cfg.DocumentLockTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "Europe/Berlin", cfg.DefaultTimezone)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DOCUMENT_LOCK_TTL", "soon")
	t.Setenv("DEFAULT_TIMEZONE", "Mars/Olympus")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.DocumentLockTTL)
	assert.Equal(t, "UTC", cfg.DefaultTimezone)
}

func TestLoadConfigFrom_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_ISSUER=ops-issuer\nRATE_LIMIT=5-S\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("JWT_ISSUER")
		_ = os.Unsetenv("RATE_LIMIT")
	})

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "ops-issuer", cfg.JWTIssuer)
	assert.Equal(t, "5-S", cfg.RateLimit)
}
