// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [Config] satisfies the engine's
// startup invariants.
func (cfg *Config) validate() error {
	if cfg.Remote.BaseURL == "" || cfg.Remote.RequestTimeout <= 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.ThresholdMinSeconds <= 0 ||
		cfg.Sync.ThresholdMaxSeconds < cfg.Sync.ThresholdMinSeconds {
		return ErrInvalidSyncConfigs
	}
	if cfg.Sync.MaxDrainPages <= 0 || cfg.Sync.AliasPageSize <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
