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
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, "*", cfg.App.CORSOrigin)
	assert.Equal(t, "hospital", cfg.DB.Name)
	assert.False(t, cfg.DB.Synchronize)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.EqualError(t, err, "JWT_SECRET is required")
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_SYNCHRONIZE", "true")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 90*time.Minute, cfg.JWT.Expiry)
	assert.False(t, cfg.App.IsDevelopment())
	assert.True(t, cfg.DB.Synchronize)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadConfig_BadExpiryFallsBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRY", "tomorrow")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_SECRET=from-file\nAPP_PORT=8080\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, "8080", cfg.App.Port)
}
