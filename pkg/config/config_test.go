package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "STATIC_DIR", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT"} {
		// Setenv registers the restore; Unsetenv makes the variable absent.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("STATIC_DIR", "/srv/static")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "/srv/static", cfg.StaticDir)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("not a number", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error parsing environment")
	})

	t.Run("out of range", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("unknown gin mode", func(t *testing.T) {
		t.Setenv("GIN_MODE", "production")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "unknown mode")
	})
}
