package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("MYNOTES_HOME", home)
	for _, key := range []string{
		"MYNOTES_DB_PATH", "MYNOTES_SERVER_ADDR", "MYNOTES_LOG_LEVEL", "MYNOTES_LOG_FILE",
		"MYNOTES_LOG_CONSOLE", "MYNOTES_CONFIRM_DELETE", "MYNOTES_WATCH_CHANGES",
	} {
		t.Setenv(key, "")
	}
	return home
}

func TestDefaults(t *testing.T) {
	home := setHome(t)

	cfg, err := LoadFrom(Path())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(home, "logs", "mynotes.log"), cfg.LogFile)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.True(t, cfg.ConfirmDelete)
	assert.True(t, cfg.WatchChanges)
	assert.False(t, cfg.LogConsole)
	assert.Equal(t, "127.0.0.1:8765", cfg.ServerAddr)
}

func TestSaveAndLoad(t *testing.T) {
	setHome(t)

	cfg := DefaultConfig()
	cfg.LogLevel = "DEBUG"
	cfg.WatchChanges = false
	cfg.DBPath = "/tmp/other.db"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	home := setHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("log_level: WARN\n"), 0644))

	cfg, err := LoadFrom(Path())
	require.NoError(t, err)
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.True(t, cfg.WatchChanges)
	assert.Equal(t, filepath.Join(home, "notes.db"), cfg.DBPath)
}

func TestEnvOverridesFile(t *testing.T) {
	home := setHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("log_level: WARN\nwatch_changes: true\n"), 0644))
	t.Setenv("MYNOTES_LOG_LEVEL", "ERROR")
	t.Setenv("MYNOTES_WATCH_CHANGES", "false")
	t.Setenv("MYNOTES_LOG_CONSOLE", "not-a-bool")

	cfg, err := LoadFrom(Path())
	require.NoError(t, err)
	assert.Equal(t, "ERROR", cfg.LogLevel)
	assert.False(t, cfg.WatchChanges)
	assert.False(t, cfg.LogConsole)
}

func TestDotEnvInHome(t *testing.T) {
	home := setHome(t)
	require.NoError(t, os.Unsetenv("MYNOTES_DB_PATH"))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".env"), []byte("MYNOTES_DB_PATH=/data/from-env.db\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv("MYNOTES_DB_PATH") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/from-env.db", cfg.DBPath)
}

func TestInvalidConfig(t *testing.T) {
	home := setHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("log_level: LOUD\nserver_addr: nowhere\n"), 0644))

	_, err := LoadFrom(Path())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
	assert.Contains(t, err.Error(), "server_addr")
}

func TestMalformedYAML(t *testing.T) {
	home := setHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("log_level: [\n"), 0644))

	_, err := LoadFrom(Path())
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestDefaultColorID(t *testing.T) {
	setHome(t)

	assert.Equal(t, int64(0), DefaultColorID())
	require.NoError(t, SetDefaultColorID(6))
	assert.Equal(t, int64(6), DefaultColorID())
	require.NoError(t, ClearDefaultColorID())
	assert.Equal(t, int64(0), DefaultColorID())
	require.NoError(t, ClearDefaultColorID())
}
