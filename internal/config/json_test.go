package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations may be strings ("15s") or bare nanosecond numbers.
	jsonBody := `{
		"app": {
			"local_key_secret": "local_secret",
			"version": "1.2.3"
		},
		"remote": {
			"base_url": "https://api.example.com",
			"request_timeout": "15s"
		},
		"storage": {
			"dsn": "/var/lib/pass/pass-sync.db"
		},
		"sync": {
			"threshold_min_seconds": 10,
			"threshold_max_seconds": 20,
			"max_drain_pages": 25,
			"alias_page_size": 40
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "local_secret", cfg.App.LocalKeySecret)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://api.example.com", cfg.Remote.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Remote.RequestTimeout)

	assert.Equal(t, "/var/lib/pass/pass-sync.db", cfg.Storage.DSN)

	assert.Equal(t, 10, cfg.Sync.ThresholdMinSeconds)
	assert.Equal(t, 20, cfg.Sync.ThresholdMaxSeconds)
	assert.Equal(t, 25, cfg.Sync.MaxDrainPages)
	assert.Equal(t, 40, cfg.Sync.AliasPageSize)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"remote": {"request_timeout": 1000000000}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Remote.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_BadDurationString(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "dur.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"remote": {"request_timeout": "fifteen"}}`), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error parsing duration")
}
