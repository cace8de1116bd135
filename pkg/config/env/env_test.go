package env

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{value: "", want: slog.LevelInfo},
		{value: "debug", want: slog.LevelDebug},
		{value: " WARN ", want: slog.LevelWarn},
		{value: "error", want: slog.LevelError},
		{value: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.value)
			assert.Equal(t, tt.want, LogLevel())
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CALC_TEST_DOTENV=loaded\n"), 0o600))

	t.Setenv("ENV_PATH", path)
	t.Setenv("CALC_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("CALC_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv("", "ignored"))
	assert.Equal(t, "loaded", os.Getenv("CALC_TEST_DOTENV"))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	assert.NoError(t, LoadDotEnv("production", ""))
	assert.Error(t, LoadDotEnv("local", ""))
}

func TestResolvePath(t *testing.T) {
	t.Setenv(PathVar, "")
	assert.Equal(t, "cmd/calc_api/.env", ResolvePath("cmd/calc_api/.env"))

	t.Setenv(PathVar, "/etc/calc/.env")
	assert.Equal(t, "/etc/calc/.env", ResolvePath("cmd/calc_api/.env"))
}
