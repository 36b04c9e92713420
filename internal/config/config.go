// Package config loads keymaze.yml, the optional settings file of the
// keymaze command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the file name looked up when --config is not given.
const DefaultFile = "keymaze.yml"

// Config represents the top-level keymaze.yml configuration
type Config struct {
	Version  string         `yaml:"version"`
	Search   SearchConfig   `yaml:"search"`
	Compress CompressConfig `yaml:"compress"`
	Log      LogConfig      `yaml:"log"`
}

// SearchConfig bounds the state-space search
type SearchConfig struct {
	MaxIterations int  `yaml:"max_iterations"` // 0 = unlimited
	ReturnPath    bool `yaml:"return_path"`    // print the move sequence
}

// CompressConfig controls graph compression
type CompressConfig struct {
	Workers int `yaml:"workers"` // concurrent per-POI searches, 0 or 1 = sequential
}

// LogConfig selects the logrus level and formatter
type LogConfig struct {
	Level  string `yaml:"level"`  // panic, fatal, error, warn, info, debug, trace
	Format string `yaml:"format"` // "text" or "json"
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Version:  "1.0",
		Compress: CompressConfig{Workers: 1},
		Log:      LogConfig{Level: "warn", Format: "text"},
	}
}

// Validate performs strict validation on the configuration
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}
	if c.Search.MaxIterations < 0 {
		return fmt.Errorf("search.max_iterations must be >= 0, got %d", c.Search.MaxIterations)
	}
	if c.Compress.Workers < 0 {
		return fmt.Errorf("compress.workers must be >= 0, got %d", c.Compress.Workers)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be 'text' or 'json', got '%s'", c.Log.Format)
	}
	return nil
}

// Load reads and validates keymaze.yml from the specified path.
// Keys missing from the file keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// NewLogger builds a logrus logger writing to w at the configured level and format.
// The configuration must be valid.
func (c *Config) NewLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	if level, err := logrus.ParseLevel(c.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	if c.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger
}
