// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Supported storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Supported validation modes of the add gate.
const (
	ValidationExisting = "existing"
	ValidationStrict   = "strict"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the persistence backend of the
	// account list.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log configures the zerolog output.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. Files ending in .yaml or .yml are parsed as YAML.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// ValidationMode selects which records the add gate inspects:
	// "existing" (default) or "strict".
	// Env: APP_VALIDATION_MODE
	ValidationMode string `env:"VALIDATION_MODE"`
}

// Storage holds the settings of the single key-value slot that keeps the
// serialized account list.
type Storage struct {
	// Driver is one of "sqlite", "bolt", "file" or "memory".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the path of the database or file backing the slot.
	// Ignored by the memory driver.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// Key is the name of the slot, "accounts" by default.
	// Env: STORAGE_KEY
	Key string `env:"KEY"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (e.g. "debug", "info").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the path the JSON log lines are appended to. The terminal is
	// owned by the TUI, so logs never go to stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
}
