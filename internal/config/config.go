// Package config loads the optional aoc configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all aoc configuration.
type Config struct {
	// Puzzle year used when fetching inputs
	Year int `yaml:"year"`

	// adventofcode.com or a mirror
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
	Timeout   string `yaml:"timeout"`

	Log LoggingConfig `yaml:"log"`

	// Session comes from AOC_SESSION only; it is never read from the file.
	Session string `yaml:"-"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

func Default() Config {
	return Config{
		Year:      2023,
		BaseURL:   "https://adventofcode.com",
		UserAgent: "aoc2023 (+local puzzle runner)",
		Timeout:   "30s",
		Log:       LoggingConfig{Level: "info"},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
// Environment overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("AOC_SESSION"); v != "" {
		c.Session = v
	}
	if v := os.Getenv("AOC_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("AOC_YEAR"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AOC_YEAR: %w", err)
		}
		c.Year = y
	}
	return nil
}

// TimeoutDuration parses Timeout; an empty value means no timeout.
func (c Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Timeout)
}

func (c Config) Validate() error {
	if c.Year < 2015 {
		return fmt.Errorf("year %d: Advent of Code started in 2015", c.Year)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
