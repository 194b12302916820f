package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeHook(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	if c.Output == "" {
		c.Output = defaultOutput
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.TVRoot, err = expandPath(strings.TrimSpace(c.TVRoot)); err != nil {
		return fmt.Errorf("tv root: %w", err)
	}
	if c.MovieRoot, err = expandPath(strings.TrimSpace(c.MovieRoot)); err != nil {
		return fmt.Errorf("movie root: %w", err)
	}
	if c.Target, err = expandPath(strings.TrimSpace(c.Target)); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	if c.LockPath, err = expandPath(strings.TrimSpace(c.LockPath)); err != nil {
		return fmt.Errorf("lock file: %w", err)
	}
	return nil
}

// normalizeHook expands hook values that look like paths. A bare command name
// is left alone so it can be resolved through PATH.
func (c *Config) normalizeHook() error {
	hook := strings.TrimSpace(c.HookPath)
	if hook == "" {
		c.HookPath = ""
		return nil
	}
	if !strings.ContainsAny(hook, `/\`) && !strings.HasPrefix(hook, "~") {
		c.HookPath = hook
		return nil
	}
	expanded, err := expandPath(hook)
	if err != nil {
		return fmt.Errorf("hook: %w", err)
	}
	c.HookPath = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		if expanded, err := expandPath(c.Logging.File); err == nil {
			c.Logging.File = expanded
		}
	}
}
