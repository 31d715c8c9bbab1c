// Package config loads the reporter's TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mj1618/a11y-reporter/internal/logging"
	"github.com/mj1618/a11y-reporter/internal/reporter"
)

// EnvConfigPath names the config file used when --config is not given.
const EnvConfigPath = "A11Y_REPORTER_CONFIG"

// Config holds every user-adjustable setting.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Reporter ReporterConfig `toml:"reporter"`

	// Source is the file the config came from, or "defaults".
	Source string `toml:"-"`
}

// LogConfig controls log verbosity and formatting.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ReporterConfig controls the reporter itself.
type ReporterConfig struct {
	Revision int `toml:"revision"`
	MaxDepth int `toml:"max_depth"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "verbose",
			Format: "text",
		},
		Reporter: ReporterConfig{
			Revision: int(reporter.RevisionInspector),
		},
		Source: "defaults",
	}
}

// Load reads path over the defaults. An empty path falls back to
// $A11Y_REPORTER_CONFIG, and to the defaults when that is unset too.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config file not found: %s", path)
		}
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "text", "console", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.Log.Format)
	}
	if _, err := c.RevisionValue(); err != nil {
		return err
	}
	if c.Reporter.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", c.Reporter.MaxDepth)
	}
	return nil
}

// RevisionValue returns the configured reporter revision.
func (c Config) RevisionValue() (reporter.Revision, error) {
	return reporter.ParseRevision(fmt.Sprint(c.Reporter.Revision))
}

// ReporterOptions builds reporter options from the config.
func (c Config) ReporterOptions() (reporter.Options, error) {
	rev, err := c.RevisionValue()
	if err != nil {
		return reporter.Options{}, err
	}
	return reporter.Options{Revision: rev, MaxDepth: c.Reporter.MaxDepth}, nil
}
