package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the CLI defaults shared by the subcommands.
// Priority: env vars > settings.json > defaults.
type Config struct {
	Version  string `json:"version"`
	Strict   bool   `json:"strict"`
	Format   string `json:"format"`
	LogLevel string `json:"log_level"`
	Workers  int    `json:"workers"`
}

func defaultConfig() Config {
	return Config{
		Format:   "text",
		LogLevel: "info",
		Workers:  4,
	}
}

func uiwireDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".uiwire"
	}
	return filepath.Join(home, ".uiwire")
}

func settingsPath() string {
	return filepath.Join(uiwireDir(), "settings.json")
}

func loadConfig() Config {
	cfg := defaultConfig()

	// Layer 2: settings.json (ignore if missing).
	if data, err := os.ReadFile(settingsPath()); err == nil {
		_ = json.Unmarshal(data, &cfg)
	}

	// Layer 3: env vars override.
	if v := os.Getenv("UIWIRE_VERSION"); v != "" {
		cfg.Version = v
	}
	if v := os.Getenv("UIWIRE_STRICT"); v != "" {
		cfg.Strict = v == "true" || v == "1"
	}
	if v := os.Getenv("UIWIRE_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("UIWIRE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("UIWIRE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}

	return cfg
}
