// Package config loads greet settings from an optional YAML file and the
// environment.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when a setting is not provided.
const (
	DefaultDelay = 100 * time.Millisecond
	DefaultColor = "auto"
	MaxDelay     = 5 * time.Second
)

// Config holds greet settings.
type Config struct {
	// User overrides the displayed user name.
	User string `yaml:"user,omitempty"`
	// Delay is the pause after each greeting character.
	Delay *Duration `yaml:"delay,omitempty"`
	// Wait controls the final "press any key" step (default: true).
	Wait *bool `yaml:"wait,omitempty"`
	// Color is one of auto, always, never (default: auto).
	Color string `yaml:"color,omitempty"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills in unset fields.
func (c *Config) SetDefaults() {
	if c.Delay == nil {
		d := Duration(DefaultDelay)
		c.Delay = &d
	}
	if c.Wait == nil {
		wait := true
		c.Wait = &wait
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
}

// DelayDuration returns the configured delay, or the default when unset.
func (c *Config) DelayDuration() time.Duration {
	if c.Delay == nil {
		return DefaultDelay
	}
	return time.Duration(*c.Delay)
}

// ShouldWait reports whether to wait for a keypress before exiting.
func (c *Config) ShouldWait() bool {
	return c.Wait == nil || *c.Wait
}

// Duration is a time.Duration written in Go duration syntax ("100ms").
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a string like \"100ms\"", node.Line)
	}
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration in Go duration syntax.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// String implements fmt.Stringer.
func (d Duration) String() string {
	return time.Duration(d).String()
}
