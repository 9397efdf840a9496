// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [Config] with snake_case JSON field names and
// string-based durations, so that config files stay human-editable.
type jsonConfig struct {
	App struct {
		LocalKeySecret string `json:"local_key_secret"`
		Version        string `json:"version"`
	} `json:"app,omitempty"`

	Remote struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage,omitempty"`

	Sync struct {
		ThresholdMinSeconds int `json:"threshold_min_seconds"`
		ThresholdMaxSeconds int `json:"threshold_max_seconds"`
		MaxDrainPages       int `json:"max_drain_pages"`
		AliasPageSize       int `json:"alias_page_size"`
	} `json:"sync,omitempty"`
}

// Duration wraps time.Duration so that JSON config files can carry values
// like "15s" or "2m" instead of bare nanosecond integers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("unsupported duration value %v", raw)
	}
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		App: App{
			LocalKeySecret: jsonCfg.App.LocalKeySecret,
			Version:        jsonCfg.App.Version,
		},
		Remote: Remote{
			BaseURL:        jsonCfg.Remote.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Storage: Storage{
			DSN: jsonCfg.Storage.DSN,
		},
		Sync: Sync{
			ThresholdMinSeconds: jsonCfg.Sync.ThresholdMinSeconds,
			ThresholdMaxSeconds: jsonCfg.Sync.ThresholdMaxSeconds,
			MaxDrainPages:       jsonCfg.Sync.MaxDrainPages,
			AliasPageSize:       jsonCfg.Sync.AliasPageSize,
		},
	}

	return cfg, nil
}
