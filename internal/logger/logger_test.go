package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"DEBUG", DEBUG},
		{"debug", DEBUG},
		{" info ", INFO},
		{"WARN", WARN},
		{"warning", WARN},
		{"ERROR", ERROR},
		{"nonsense", INFO},
		{"", INFO},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "ERROR", ERROR.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	l, err := New(Config{Level: INFO, FilePath: path, MaxSize: 1024 * 1024, MaxAge: 7, MaxBackups: 2})
	require.NoError(t, err)

	l.Debug("hidden")
	l.WithFields(F("screen", "notes")).Info("navigated", F("id", 3))
	l.Error("failed", Err(errors.New("boom")))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"navigated"`)
	assert.Contains(t, out, `"screen":"notes"`)
	assert.Contains(t, out, `"id":3`)
	assert.Contains(t, out, `"error":"boom"`)
}

func TestRotatesBySize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := New(Config{Level: DEBUG, FilePath: path, MaxSize: 200, MaxAge: 7, MaxBackups: 2})
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		l.Info(strings.Repeat("x", 40), F("i", i))
	}
	require.NoError(t, l.Close())

	_, err = os.Stat(path + ".1")
	assert.NoError(t, err)
	_, err = os.Stat(path + ".2")
	assert.NoError(t, err)
	_, err = os.Stat(path + ".3")
	assert.True(t, os.IsNotExist(err))
}

func TestNopAndNoOutputs(t *testing.T) {
	l, err := New(Config{Level: INFO})
	require.NoError(t, err)
	l.Info("nowhere")
	assert.NoError(t, l.Close())

	n := Nop()
	n.WithFields(F("k", "v")).Warn("dropped")
	assert.NoError(t, n.Close())
}

func TestGlobalFunctionsBeforeInit(t *testing.T) {
	// Must not panic without Init
	Info("ignored")
	Error("ignored")
	assert.NotNil(t, L())
	assert.NotNil(t, WithFields(F("a", 1)))
}

func TestInitAfterClose(t *testing.T) {
	dir := t.TempDir()
	first := Config{Level: INFO, FilePath: filepath.Join(dir, "first.log"), MaxSize: 1 << 20}
	second := Config{Level: DEBUG, FilePath: filepath.Join(dir, "second.log"), MaxSize: 1 << 20}

	require.NoError(t, Init(first))
	require.NoError(t, Init(second))
	assert.Equal(t, first.FilePath, GetConfig().FilePath)
	Info("to first")
	require.NoError(t, Close())

	require.NoError(t, Init(second))
	assert.Equal(t, DEBUG, GetConfig().Level)
	Debug("to second")
	require.NoError(t, Close())

	data, err := os.ReadFile(second.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to second")
}
