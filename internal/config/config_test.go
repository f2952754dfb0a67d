package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/sketchvault")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "10000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10<<20, cfg.BodyLimit)
	assert.Equal(t, 5, cfg.SigninPerMinute)
	assert.Equal(t, 10*time.Second, cfg.ShutdownPeriod)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/sketchvault")
	t.Setenv("PORT", "8081")
	t.Setenv("BODY_LIMIT_BYTES", "1048576")
	t.Setenv("SIGNIN_RATE_PER_MIN", "20")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "3600")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Address())
	assert.Equal(t, 1<<20, cfg.BodyLimit)
	assert.Equal(t, 20, cfg.SigninPerMinute)
	assert.Equal(t, 30*time.Second, cfg.ShutdownPeriod)
	assert.Equal(t, time.Hour, cfg.IdempotencyTTL)
}

func TestLoadRejectsBadBodyLimit(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/sketchvault")
	t.Setenv("BODY_LIMIT_BYTES", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
