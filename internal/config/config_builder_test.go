package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies the merge priority: a field set by an
// earlier config is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{Remote: Remote{BaseURL: "https://env.example.com", RequestTimeout: time.Second}},
		&Config{Remote: Remote{BaseURL: "https://json.example.com", RequestTimeout: time.Minute}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.Remote.BaseURL)
	assert.Equal(t, time.Second, cfg.Remote.RequestTimeout)
}

// TestBuild_DefaultsFillGaps verifies that fields no source set come from the
// compiled-in defaults.
func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{Remote: Remote{BaseURL: "https://api.example.com"}})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "pass-sync.db", cfg.Storage.DSN)
	assert.Equal(t, 55, cfg.Sync.ThresholdMinSeconds)
	assert.Equal(t, 60, cfg.Sync.ThresholdMaxSeconds)
	assert.Equal(t, 50, cfg.Sync.MaxDrainPages)
	assert.Equal(t, 100, cfg.Sync.AliasPageSize)
}

// TestBuild_ValidatesMergedResult verifies that validation runs on the final
// merged config.
func TestBuild_ValidatesMergedResult(t *testing.T) {
	// no BaseURL anywhere, defaults alone cannot satisfy validation
	cfg, err := newConfigBuilder().withDefaults().build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, ErrInvalidRemoteConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathIsNoop verifies that without a JSONFilePath from an
// earlier source nothing is appended.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.withJSON()
	assert.Empty(t, b.configs)
}

// TestWithJSON_UsesPathFromEarlierSource verifies that the path discovered in
// an earlier config is loaded and appended.
func TestWithJSON_UsesPathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"remote": map[string]any{"base_url": "https://api.example.com"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{JSONFilePath: path})
	b.withJSON()

	require.Len(t, b.configs, 2)
	assert.Equal(t, "https://api.example.com", b.configs[1].Remote.BaseURL)
}

// TestWithJSON_BadPathSetsError verifies that an unreadable file is recorded
// as a builder error and surfaces from build.
func TestWithJSON_BadPathSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{JSONFilePath: "definitely-does-not-exist.json"})
	b.withJSON()

	_, err := b.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

// ── GetConfig ─────────────────────────────────────────────────────────────────

// TestGetConfig_EnvOverJSONOverDefaults runs the full pipeline with both env
// and a JSON file present.
func TestGetConfig_EnvOverJSONOverDefaults(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"remote": map[string]any{
			"base_url":        "https://json.example.com",
			"request_timeout": "30s",
		},
		"sync": map[string]any{"max_drain_pages": 10},
	})

	t.Setenv("PASS_SYNC_CONFIG", path)
	t.Setenv("REMOTE_BASE_URL", "https://env.example.com")

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.Remote.BaseURL) // env wins
	assert.Equal(t, 30*time.Second, cfg.Remote.RequestTimeout)     // json fills
	assert.Equal(t, 10, cfg.Sync.MaxDrainPages)                    // json fills
	assert.Equal(t, 55, cfg.Sync.ThresholdMinSeconds)              // default fills
}
