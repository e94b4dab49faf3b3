package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultPath returns ~/.sufragio/config.toml, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sufragio", "config.toml")
}

// Load builds the configuration: defaults, then the TOML file at path (a
// missing file is not an error), then .env, then SUFRAGIO_* variables.
// The result is validated before it is returned.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	// .env is optional.
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	if cfg.Sandbox.DBPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Sandbox.DBPath = filepath.Join(home, ".sufragio", "sandbox.db")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.API.BaseURL, "SUFRAGIO_API_URL")
	setInt(&cfg.API.TimeoutMs, "SUFRAGIO_API_TIMEOUT_MS")
	setBool(&cfg.API.LogCalls, "SUFRAGIO_LOG_CALLS")

	setStr(&cfg.Assets.BaseURL, "SUFRAGIO_ASSETS_URL")

	setInt(&cfg.Console.DisplayDelayMs, "SUFRAGIO_DISPLAY_DELAY_MS")

	setStr(&cfg.Sandbox.Addr, "SUFRAGIO_SANDBOX_ADDR")
	setStr(&cfg.Sandbox.DBPath, "SUFRAGIO_SANDBOX_DB")
	setBool(&cfg.Sandbox.Seed, "SUFRAGIO_SANDBOX_SEED")
	setStr(&cfg.Sandbox.DataPath, "SUFRAGIO_SANDBOX_DATA")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
