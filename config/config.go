package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/fanlog/fanlog/core"
	"github.com/fanlog/fanlog/logger"
	"github.com/fanlog/fanlog/target"
)

// Config selects the log threshold and output targets.
type Config struct {
	// Level is the minimum severity: one of trace, debug, info, warn,
	// error (case-insensitive). Empty keeps the Warn default. "fatal"
	// is not a settable threshold and fails validation.
	Level string `toml:"level"`
	// File, when non-empty, attaches a truncate-write file target at
	// this path.
	File string `toml:"file"`
	// Stderr attaches the auto-colorizing standard-error target.
	Stderr bool `toml:"stderr"`
	// Marker attaches the external string-marker target when that
	// capability is available, and the null target otherwise.
	Marker bool `toml:"marker"`
}

// Load reads a TOML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read log config")
	}
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse log config")
	}
	return cfg, nil
}

// Build constructs a Logger from the configuration. Construction
// failure of any requested target tears down what was already built
// and returns the error; the marker target is the one exception,
// falling back to the null target when the capability is absent.
func (c *Config) Build() (*logger.Logger, error) {
	l := logger.New()
	if c.Level != "" {
		level := core.ParseLevel(c.Level)
		if level == core.InvalidLevel {
			return nil, errors.Errorf("unknown log level %q", c.Level)
		}
		l.SetLevel(level)
	}
	if c.File != "" {
		t, err := target.NewFile(c.File)
		if err != nil {
			l.Close()
			return nil, err
		}
		l.AddTarget(t)
	}
	if c.Stderr {
		t, err := target.NewStderr()
		if err != nil {
			l.Close()
			return nil, err
		}
		l.AddTarget(t)
	}
	if c.Marker {
		t, err := target.NewMarker()
		if err != nil {
			if !errors.Is(err, target.ErrMarkerUnavailable) {
				l.Close()
				return nil, err
			}
			t = target.Null()
		}
		l.AddTarget(t)
	}
	return l, nil
}
