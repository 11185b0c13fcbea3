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
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if SHOWCASE_CONFIG is set
//  3. env (prefix SHOWCASE_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("SHOWCASE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SHOWCASE_ADDR, SHOWCASE_DATABASE_URL, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("SHOWCASE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "showcase_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.MaxSearchResults < 1:
		return nil, fmt.Errorf("%w: max_search_results must be positive", ErrInvalidConfig)
	case cfg.RelatedLimit < 1:
		return nil, fmt.Errorf("%w: related_limit must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
