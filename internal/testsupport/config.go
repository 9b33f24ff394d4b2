// Package testsupport provides shared helpers for grocer tests: temp-dir
// configs and pre-opened stores with automatic cleanup.
package testsupport

import (
	"path/filepath"
	"testing"

	"grocer/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithDefaultList overrides the default list name on the test config.
func WithDefaultList(name string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Voice.DefaultList = name
	}
}
