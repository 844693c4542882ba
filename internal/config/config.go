// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration for the rank runner.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DatasetPath points at a JSON file of city metric records. Empty
	// means generate a synthetic dataset instead.
	DatasetPath string `koanf:"dataset_path"`

	// ProfilePath points at a YAML preference profile. Empty means use
	// the built-in balanced defaults.
	ProfilePath string `koanf:"profile_path"`

	// CityCount sets the synthetic dataset size when no dataset file is
	// given.
	CityCount int `koanf:"city_count"`

	// Seed drives synthetic dataset generation.
	Seed int64 `koanf:"seed"`

	// TopN caps how many ranked rows the runner prints.
	TopN int `koanf:"top_n"`

	// MetricsEnabled toggles Prometheus instrumentation of the engine.
	MetricsEnabled bool `koanf:"metrics_enabled"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and currently
// unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:       "info",
		CityCount:      50,
		Seed:           42,
		TopN:           20,
		MetricsEnabled: true,
	}
}
