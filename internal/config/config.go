// Copyright 2025 go-tricolor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the tricolor command configuration from YAML and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-tricolor/tricolor/contrib/partition"
)

// Environment variables that override file settings.
const (
	EnvAlgorithm = "TRICOLOR_ALGORITHM"
	EnvWorkers   = "TRICOLOR_WORKERS"
	EnvVectors   = "TRICOLOR_VECTORS"
	EnvLogLevel  = "TRICOLOR_LOG_LEVEL"
	EnvDebug     = "TRICOLOR_DEBUG"
)

// Config holds the tricolor command settings.
type Config struct {
	// Algorithm used by "sort": counting or pointers.
	Algorithm string `yaml:"algorithm"`

	// Workers bounds harness parallelism; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// VectorsPath points at a YAML vector file; empty uses the built-in set.
	VectorsPath string `yaml:"vectors_path"`

	Logging Logging `yaml:"logging"`
}

// Logging configures the console logger.
type Logging struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Algorithm: partition.Counting.String(),
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvAlgorithm); v != "" {
		c.Algorithm = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
	if v := os.Getenv(EnvVectors); v != "" {
		c.VectorsPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if DebugEnv() {
		c.Logging.Level = "debug"
	}
}

// DebugEnv checks if TRICOLOR_DEBUG is set. Any non-empty value that does
// not parse as a bool counts as true.
func DebugEnv() bool {
	val := os.Getenv(EnvDebug)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// ParsedAlgorithm returns the configured algorithm.
func (c *Config) ParsedAlgorithm() (partition.Algorithm, error) {
	return partition.ParseAlgorithm(c.Algorithm)
}

// ParsedLevel returns the configured log level.
func (c *Config) ParsedLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Logging.Level)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := c.ParsedAlgorithm(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if _, err := c.ParsedLevel(); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q (want console or json)", c.Logging.Format)
	}
	return nil
}
