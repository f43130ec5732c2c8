// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix namespaces every environment variable, e.g. VIBE_BACKEND.
const Prefix = "VIBE"

// Backend selects where the journal blob is kept.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// Config holds the settings for one vibe process. The journal directory is
// resolved separately by files.ResolveBasePath (VIBE_HOME).
type Config struct {
	Backend Backend `envconfig:"BACKEND" default:"file"`

	// QuotaBytes caps the stored journal; 0 disables the limit.
	QuotaBytes int64 `envconfig:"QUOTA_BYTES" default:"5242880"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFile  string `envconfig:"LOG_FILE"`

	// Seed fixes quote and music selection when non-zero.
	Seed uint64 `envconfig:"SEED" default:"0"`
}

// Load reads an optional .env file from the working directory, then the VIBE_ variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv processes the VIBE_ variables without touching .env files.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalises and checks the values.
func (c *Config) Validate() error {
	c.Backend = Backend(strings.ToLower(strings.TrimSpace(string(c.Backend))))
	switch c.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unsupported %s_BACKEND: %q (expected file|sqlite)", Prefix, c.Backend)
	}
	if c.QuotaBytes < 0 {
		return fmt.Errorf("%s_QUOTA_BYTES must not be negative", Prefix)
	}
	return nil
}
