package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresSecret(t *testing.T) {
	_, err := Load(nil)
	require.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GOSHOP_JWT_SECRET", "test-secret")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "goshop.db", cfg.DatabasePath)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestLoad_EnvOverlay(t *testing.T) {
	t.Setenv("GOSHOP_JWT_SECRET", "env-secret")
	t.Setenv("GOSHOP_ADDR", ":9090")
	t.Setenv("GOSHOP_TOKEN_TTL", "24h")
	t.Setenv("GOSHOP_ADMIN_EMAIL", "admin@test.com")
	t.Setenv("GOSHOP_ADMIN_PASSWORD", "admin123")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "admin@test.com", cfg.AdminEmail)
	assert.Equal(t, "admin123", cfg.AdminPassword)
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("GOSHOP_JWT_SECRET", "env-secret")
	t.Setenv("GOSHOP_TOKEN_TTL", "not-a-duration")

	_, err := Load(nil)
	require.Error(t, err)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("GOSHOP_JWT_SECRET", "env-secret")
	t.Setenv("GOSHOP_ADDR", ":9090")

	cfg, err := Load([]string{"-a", ":7070", "-t", "48h"})
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, 48*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
}
