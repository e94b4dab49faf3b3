package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds all settings for the console and the local sandbox backend.
type Config struct {
	API     APIConfig     `toml:"api"`
	Assets  AssetsConfig  `toml:"assets"`
	Console ConsoleConfig `toml:"console"`
	Sandbox SandboxConfig `toml:"sandbox"`
}

// APIConfig points the repository client at the remote electoral API.
type APIConfig struct {
	BaseURL   string `toml:"base_url"`
	TimeoutMs int    `toml:"timeout_ms"`
	LogCalls  bool   `toml:"log_calls"`
}

// AssetsConfig controls how relative candidate photo references resolve.
type AssetsConfig struct {
	BaseURL string `toml:"base_url"`
}

// ConsoleConfig holds interactive console settings.
type ConsoleConfig struct {
	// DisplayDelayMs is how long a generated ballot stays on screen before
	// the workflow resets and the ballot list refreshes.
	DisplayDelayMs int `toml:"display_delay_ms"`
}

// SandboxConfig configures `sufragio serve`.
type SandboxConfig struct {
	Addr   string `toml:"addr"`
	DBPath string `toml:"db_path"`
	Seed   bool   `toml:"seed"`
	// DataPath is a JSON data set imported instead of the demo data when
	// Seed is set.
	DataPath string `toml:"data_path"`
}

// Defaults returns a Config pointing at a sandbox on localhost.
func Defaults() Config {
	return Config{
		API: APIConfig{
			BaseURL:   "http://localhost:3000",
			TimeoutMs: 10000,
		},
		Assets: AssetsConfig{
			BaseURL: "http://localhost:3000/uploads",
		},
		Console: ConsoleConfig{
			DisplayDelayMs: 1500,
		},
		Sandbox: SandboxConfig{
			Addr: ":3000",
		},
	}
}

// Timeout returns the per-request timeout.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// DisplayDelay returns the success display delay.
func (c ConsoleConfig) DisplayDelay() time.Duration {
	return time.Duration(c.DisplayDelayMs) * time.Millisecond
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not an absolute URL", c.API.BaseURL)
	}
	if c.API.TimeoutMs <= 0 {
		return fmt.Errorf("api.timeout_ms must be positive")
	}
	if c.Console.DisplayDelayMs < 0 {
		return fmt.Errorf("console.display_delay_ms cannot be negative")
	}
	return nil
}
