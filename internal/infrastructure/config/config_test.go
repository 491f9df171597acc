package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// No config file is present in the test working directory; defaults
	// must carry the whole configuration.
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "tansy.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.GetAddr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TANSY_DATABASE_PATH", "/tmp/override.db")
	t.Setenv("TANSY_SERVER_PORT", "9090")
	t.Setenv("TANSY_LOGGER_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestGet_ReturnsLoadedConfig(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Same(t, cfg, Get())
}
