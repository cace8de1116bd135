// Package env reads process configuration from the environment and .env files.
package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const (
	// PathVar overrides the .env location passed to LoadDotEnv.
	PathVar = "ENV_PATH"
	// Local is the APP_ENV value under which a missing .env file is fatal.
	Local = "local"
)

// ResolvePath returns ENV_PATH when set, otherwise defaultPath.
func ResolvePath(defaultPath string) string {
	if p := os.Getenv(PathVar); p != "" {
		return p
	}
	return defaultPath
}

// LoadDotEnv loads the .env file at ResolvePath(defaultPath) without
// overriding variables that are already set. A missing or unreadable file
// is only an error when appEnv is Local.
func LoadDotEnv(appEnv string, defaultPath string) error {
	path := ResolvePath(defaultPath)

	if err := godotenv.Load(path); err != nil {
		if appEnv == Local {
			slog.Error("Failed to load .env in local mode", "path", path, "error", err)
			return err
		}
		slog.Debug("No .env loaded", "path", path, "app_env", appEnv)
		return nil
	}

	slog.Debug("Loaded .env", "path", path)
	return nil
}
