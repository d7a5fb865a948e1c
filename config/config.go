// Package config loads gridpath settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/pathfind"
)

// ErrInvalidConfig wraps every malformed setting.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	Host          string             // Host IP for the HTTP server
	Port          int                // Port for the HTTP server, 0 picks a free one
	BaseURL       string             // Route prefix for the HTTP API
	GinMode       string             // Mode for the Gin framework (release, debug, test)
	LogLevel      slog.Level         // Minimum level for the text log handler
	MaxRows       int                // Largest grid height a surface accepts
	MaxCols       int                // Largest grid width a surface accepts
	MaxExpansions int                // Per-search expansion cap, 0 for none
	Algorithm     pathfind.Algorithm // Default algorithm for surfaces
}

// Addr joins Host and Port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads the configuration. Files are .env files loaded with godotenv
// before the environment is read; with no files it tries ./.env and treats a
// missing file as normal. Variables already set in the environment win.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 {
			return Config{}, fmt.Errorf("config: loading %v: %w", files, err)
		}
		slog.Default().Debug(".env file not found or could not be loaded", "error", err)
	}

	var (
		cfg Config
		err error
	)
	cfg.Host = getEnvWithDefault("GRIDPATH_HOST", "127.0.0.1")
	cfg.BaseURL = getEnvWithDefault("GRIDPATH_BASE_URL", "/api")
	cfg.GinMode = getEnvWithDefault("GIN_MODE", "release")
	if cfg.Port, err = getEnvAsInt("GRIDPATH_PORT", 8080, 0, 65535); err != nil {
		return Config{}, err
	}
	if cfg.MaxRows, err = getEnvAsInt("GRIDPATH_MAX_ROWS", 200, 1, 1<<15); err != nil {
		return Config{}, err
	}
	if cfg.MaxCols, err = getEnvAsInt("GRIDPATH_MAX_COLS", 200, 1, 1<<15); err != nil {
		return Config{}, err
	}
	if cfg.MaxExpansions, err = getEnvAsInt("GRIDPATH_MAX_EXPANSIONS", 0, 0, 1<<30); err != nil {
		return Config{}, err
	}

	level := getEnvWithDefault("GRIDPATH_LOG_LEVEL", "info")
	if cfg.LogLevel, err = ctxlog.ParseLevel(level); err != nil {
		return Config{}, fmt.Errorf("%w: GRIDPATH_LOG_LEVEL=%q: %v", ErrInvalidConfig, level, err)
	}
	alg := getEnvWithDefault("GRIDPATH_ALGORITHM", "a_star")
	if cfg.Algorithm, err = pathfind.ParseAlgorithm(alg); err != nil {
		return Config{}, fmt.Errorf("%w: GRIDPATH_ALGORITHM: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable within [lo, hi],
// or defaultValue when unset.
func getEnvAsInt(key string, defaultValue, lo, hi int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	if value < lo || value > hi {
		return 0, fmt.Errorf("%w: %s=%d outside [%d, %d]", ErrInvalidConfig, key, value, lo, hi)
	}
	return value, nil
}
