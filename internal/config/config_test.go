package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_AreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10*time.Second, cfg.API.Timeout())
	assert.Equal(t, 1500*time.Millisecond, cfg.Console.DisplayDelay())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.API.BaseURL)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[api]
base_url = "https://api.example.org"
timeout_ms = 2500

[assets]
base_url = "https://cdn.example.org/fotos"
`), 0o600))

	t.Setenv("SUFRAGIO_API_TIMEOUT_MS", "4000")
	t.Setenv("SUFRAGIO_DISPLAY_DELAY_MS", "0")
	t.Setenv("SUFRAGIO_LOG_CALLS", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org", cfg.API.BaseURL)
	assert.Equal(t, 4000, cfg.API.TimeoutMs)
	assert.True(t, cfg.API.LogCalls)
	assert.Equal(t, "https://cdn.example.org/fotos", cfg.Assets.BaseURL)
	assert.Equal(t, 0, cfg.Console.DisplayDelayMs)
}

func TestLoad_InvalidEnvIgnored(t *testing.T) {
	t.Setenv("SUFRAGIO_API_TIMEOUT_MS", "soon")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.API.TimeoutMs)
}

func TestValidate_RejectsRelativeBaseURL(t *testing.T) {
	cfg := Defaults()
	cfg.API.BaseURL = "/api"
	assert.ErrorContains(t, cfg.Validate(), "absolute URL")

	cfg = Defaults()
	cfg.API.TimeoutMs = 0
	assert.ErrorContains(t, cfg.Validate(), "timeout_ms")
}
