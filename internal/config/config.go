// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Config is the top-level configuration container for the sync engine. It
// is populated by merging values from environment variables and an optional
// JSON file on top of compiled-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings such as the local encryption
	// secret used to derive the at-rest symmetric key.
	App App `envPrefix:"APP_"`

	// Remote holds the remote authority's endpoint settings.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds local cache database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds event-loop and reconciliation tuning knobs.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables.
	// Populated via the PASS_SYNC_CONFIG environment variable.
	JSONFilePath string `env:"PASS_SYNC_CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LocalKeySecret is the secret the local symmetric key is derived from
	// with Argon2id. Must be kept confidential.
	// Env: APP_LOCAL_KEY_SECRET
	LocalKeySecret string `env:"LOCAL_KEY_SECRET"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Remote holds network settings for the outbound API client.
type Remote struct {
	// BaseURL is the remote authority's API base URL
	// (e.g. "https://api.example.com").
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for outbound calls
	// (e.g. "15s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds connection settings for the local cache database.
type Storage struct {
	// DSN is the SQLite file path (or ":memory:" in tests).
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds tuning knobs for the sync event loop and reconciliation.
type Sync struct {
	// ThresholdMinSeconds and ThresholdMaxSeconds bound the per-cycle
	// randomized fire threshold of the event loop. A fresh threshold is
	// drawn uniformly from [min, max] after every fire so that installs
	// do not synchronize against the server.
	// Env: SYNC_THRESHOLD_MIN_SECONDS / SYNC_THRESHOLD_MAX_SECONDS
	ThresholdMinSeconds int `env:"THRESHOLD_MIN_SECONDS"`
	ThresholdMaxSeconds int `env:"THRESHOLD_MAX_SECONDS"`

	// MaxDrainPages caps how many event pages a single share (or the
	// account stream) may drain within one pass; a misbehaving server that
	// always reports pending events cannot spin the client forever.
	// Env: SYNC_MAX_DRAIN_PAGES
	MaxDrainPages int `env:"MAX_DRAIN_PAGES"`

	// AliasPageSize bounds satellite job pages.
	// Env: SYNC_ALIAS_PAGE_SIZE
	AliasPageSize int `env:"ALIAS_PAGE_SIZE"`
}

// defaults returns the compiled-in baseline configuration that env and JSON
// values are merged over.
func defaults() *Config {
	return &Config{
		Remote: Remote{
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			DSN: "pass-sync.db",
		},
		Sync: Sync{
			ThresholdMinSeconds: 55,
			ThresholdMaxSeconds: 60,
			MaxDrainPages:       50,
			AliasPageSize:       100,
		},
	}
}

// GetConfig builds the final engine configuration: defaults, overridden by
// environment variables, overridden by the optional JSON file, validated.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
