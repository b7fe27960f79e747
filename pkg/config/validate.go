package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "validation errors:\n  - " + strings.Join(msgs, "\n  - ")
}

// Validate checks the configuration for errors.
func Validate(c *Config) error {
	var errs ValidationErrors

	if c.Delay != nil {
		d := c.DelayDuration()
		if d < 0 {
			errs = append(errs, ValidationError{"delay", "must not be negative"})
		} else if d > MaxDelay {
			errs = append(errs, ValidationError{"delay", fmt.Sprintf("must be at most %s", MaxDelay)})
		}
	}

	switch c.Color {
	case "", "auto", "always", "never":
	default:
		errs = append(errs, ValidationError{"color", fmt.Sprintf("must be 'auto', 'always', or 'never', got '%s'", c.Color)})
	}

	if strings.ContainsAny(c.User, "\r\n") {
		errs = append(errs, ValidationError{"user", "must be a single line"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
