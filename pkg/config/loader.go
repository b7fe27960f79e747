package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvUser    = "GREET_USER"
	EnvDelay   = "GREET_DELAY"
	EnvColor   = "GREET_COLOR"
	EnvNoColor = "NO_COLOR"
)

// Load reads and parses a config file, then applies environment overrides
// and defaults. The result is validated.
func Load(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := complete(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data. Unknown fields are rejected and
// environment variables in string values are expanded.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	expandEnvVars(&cfg)
	return &cfg, nil
}

// Assemble builds the configuration from the file at path (when non-empty),
// environment overrides and defaults, without validating it. Callers layer
// their own overrides on top and then call Validate.
func Assemble(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		var err error
		if cfg, err = readFile(path); err != nil {
			return nil, err
		}
	}
	if err := complete(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve is Assemble followed by Validate.
func Resolve(path string) (*Config, error) {
	cfg, err := Assemble(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func complete(cfg *Config) error {
	if err := ApplyEnv(cfg, os.Getenv); err != nil {
		return err
	}
	cfg.SetDefaults()
	return nil
}

// ApplyEnv overrides cfg with GREET_* variables read through getenv.
// NO_COLOR turns automatic color detection off.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvUser); v != "" {
		cfg.User = v
	}

	if v := getenv(EnvDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvDelay, err)
		}
		delay := Duration(d)
		cfg.Delay = &delay
	}

	if v := getenv(EnvColor); v != "" {
		cfg.Color = v
	}

	if getenv(EnvNoColor) != "" && (cfg.Color == "" || cfg.Color == "auto") {
		cfg.Color = "never"
	}
	return nil
}

// expandEnvVars expands environment variables in string values.
func expandEnvVars(c *Config) {
	c.User = os.ExpandEnv(c.User)
	c.Color = os.ExpandEnv(c.Color)
}
