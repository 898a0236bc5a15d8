package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meesudzu/ocelot/internal/config"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.ini"))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.ListenAddress)
	assert.Equal(t, 25565, cfg.Server.ListenPort)
	assert.False(t, cfg.Server.OnlineMode)
}

func TestLoadConfigParsesKnownFieldsAndIgnoresUnknownSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.ini")
	content := "[Unknown]\nFoo=bar\n\n[Server]\nListenAddress=127.0.0.1\nListenPort=25566\nOnlineMode=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.ListenAddress)
	assert.Equal(t, 25566, cfg.Server.ListenPort)
	assert.True(t, cfg.Server.OnlineMode)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("OCELOT_LISTEN_PORT", "30000")
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	require.NoError(t, err)
	assert.Equal(t, 30000, cfg.Server.ListenPort)
}
