package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if CITYRANK_CONFIG is set
//  3. env (prefix CITYRANK_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("CITYRANK_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: CITYRANK_LOG_LEVEL, CITYRANK_CITY_COUNT, ...
	// Map env keys like CITYRANK_CITY_COUNT -> city_count (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("CITYRANK_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "cityrank_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.CityCount <= 0 && cfg.DatasetPath == "" {
		return nil, fmt.Errorf("%w: city_count must be positive without a dataset file", ErrInvalidConfig)
	}
	if cfg.TopN < 0 {
		return nil, fmt.Errorf("%w: top_n must not be negative", ErrInvalidConfig)
	}
	return &cfg, nil
}
