package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "inkprov.db", cfg.DB.Path)
	require.Equal(t, "http", cfg.MCP.Transport)
	require.True(t, cfg.MCP.AuthEnabled)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
db:
  path: /tmp/stories.db
mcp:
  transport: stdio
log:
  level: debug
`), 0o644))
	t.Setenv("INKPROV_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/stories.db", cfg.DB.Path)
	require.Equal(t, "stdio", cfg.MCP.Transport)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o644))
	t.Setenv("INKPROV_CONFIG_PATH", path)
	t.Setenv("INKPROV_SERVER_PORT", "7070")
	t.Setenv("INKPROV_MCP_AUTH_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Server.Port)
	require.False(t, cfg.MCP.AuthEnabled)
}

func TestInvalidPort(t *testing.T) {
	t.Setenv("INKPROV_SERVER_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}
