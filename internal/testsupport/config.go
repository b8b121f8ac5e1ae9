package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"modelmeta/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with repository defaults and applies any
// provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithBaseURL points the registry client at the given endpoint.
func WithBaseURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Civitai.BaseURL = url
	}
}

// WithExtension overrides the eligible model file extension.
func WithExtension(ext string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Files.Extension = ext
	}
}

// WithLogLevel overrides the configured log level.
func WithLogLevel(level string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Logging.Level = level
	}
}

// WithLogDir mirrors log output into dir.
func WithLogDir(dir string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.LogDir = dir
	}
}

// WriteConfigFile marshals cfg to a TOML file in a fresh temp directory and
// returns its path.
func WriteConfigFile(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	WriteFile(t, path, data)
	return path
}
