package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const envPrefix = "ALGODRILL_"

// applyEnv overrides file settings from ALGODRILL_* variables
func applyEnv(cfg *Config) {
	cfg.Practice.Seed = getEnvInt64("SEED", cfg.Practice.Seed)
	cfg.Practice.Language = getEnv("LANGUAGE", cfg.Practice.Language)
	cfg.Practice.DefaultAlgorithm = getEnv("ALGORITHM", cfg.Practice.DefaultAlgorithm)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.CatalogPath = getEnv("CATALOG_PATH", cfg.CatalogPath)
	cfg.History.Backend = getEnv("HISTORY", cfg.History.Backend)
	cfg.History.Path = getEnv("HISTORY_PATH", cfg.History.Path)
	cfg.Sizes.GraphNodes = getEnvInt("GRAPH_NODES", cfg.Sizes.GraphNodes)
}

// ParseLogLevel maps a config string to a slog level
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(envPrefix + key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(envPrefix + key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}
