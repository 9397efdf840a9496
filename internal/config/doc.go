// Package config loads and validates the sync engine configuration.
//
// Values come from three sources merged in priority order:
//  1. environment variables (caarlos0/env struct tags),
//  2. an optional JSON file named by PASS_SYNC_CONFIG,
//  3. compiled-in defaults.
//
// Merging is performed with mergo: an earlier source wins over a later one
// because only still-zero fields are filled.
package config
