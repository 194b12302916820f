package config

import (
	"errors"
	"fmt"

	"mediasort/internal/services"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"console", "json"}
	validOutputs    = []string{"table", "json", "toml", "none"}
)

// Validate ensures the configuration is usable. Failures carry
// services.ErrValidation. Filesystem state (whether the roots exist) is
// checked separately by the preflight package.
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return services.Wrap(services.ErrValidation, "config", "validate", "", err)
	}
	return nil
}

func (c *Config) validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLimits(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if !contains(validOutputs, c.Output) {
		return fmt.Errorf("output must be one of %v, got %q", validOutputs, c.Output)
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.TVRoot == "" {
		return errors.New("tv root must be set")
	}
	if c.MovieRoot == "" {
		return errors.New("movie root must be set")
	}
	if c.Target == "" {
		return errors.New("target must be set")
	}
	return nil
}

func (c *Config) validateLimits() error {
	if c.HookTimeout < 0 {
		return fmt.Errorf("hook timeout must be >= 0, got %s", c.HookTimeout)
	}
	if c.MinVideoSize < 0 {
		return fmt.Errorf("minimum video size must be >= 0, got %d", c.MinVideoSize)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !contains(validLogLevels, c.Logging.Level) {
		return fmt.Errorf("log level must be one of %v, got %q", validLogLevels, c.Logging.Level)
	}
	if !contains(validLogFormats, c.Logging.Format) {
		return fmt.Errorf("log format must be one of %v, got %q", validLogFormats, c.Logging.Format)
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
