// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers file and env on top.
// - External errors are wrapped via this package's sentinels.
package config

import "context"

// Default limits for request-facing knobs.
const (
	defaultMaxSearchResults = 500
	defaultRelatedLimit     = 5
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatabaseURL points at the Postgres assessments database. Empty selects
	// the in-memory store (development mode).
	DatabaseURL string `koanf:"database_url"`

	// MaxSearchResults caps the number of records a search response returns.
	MaxSearchResults int `koanf:"max_search_results"`

	// RelatedLimit is the default cap for related-researcher listings.
	RelatedLimit int `koanf:"related_limit"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":8080",
		DatabaseURL:      "",
		MaxSearchResults: defaultMaxSearchResults,
		RelatedLimit:     defaultRelatedLimit,
	}
}
