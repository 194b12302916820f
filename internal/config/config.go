package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"mediasort/internal/textutil"
)

// ErrUsage reports that the positional arguments are incomplete.
var ErrUsage = errors.New("expected <tv-dir> <movie-dir> <file-or-dir> [test|<hook>]")

// DryRunToken is the optional fourth argument that enables dry-run mode.
const DryRunToken = "test"

// Logging contains configuration for log output.
type Logging struct {
	Level  string `json:"level" toml:"level"`
	Format string `json:"format" toml:"format"`
	File   string `json:"file,omitempty" toml:"file,omitempty"`
}

// Config encapsulates the settings of a single run. It is resolved once at
// startup from positional arguments, flags, and environment variables and is
// read-only afterwards.
type Config struct {
	TVRoot       string        `json:"tv_root" toml:"tv_root"`
	MovieRoot    string        `json:"movie_root" toml:"movie_root"`
	Target       string        `json:"target" toml:"target"`
	DryRun       bool          `json:"dry_run" toml:"dry_run"`
	HookPath     string        `json:"hook,omitempty" toml:"hook,omitempty"`
	HookTimeout  time.Duration `json:"hook_timeout" toml:"hook_timeout"`
	MinVideoSize int64         `json:"min_video_size" toml:"min_video_size"`
	LockPath     string        `json:"lock_path,omitempty" toml:"lock_path,omitempty"`
	Output       string        `json:"output" toml:"output"`
	NoColor      bool          `json:"no_color" toml:"no_color"`
	Logging      Logging       `json:"logging" toml:"logging"`
}

// Load applies the positional arguments to base, then normalizes and
// validates the result.
func Load(base Config, args []string) (*Config, error) {
	cfg := base
	if err := cfg.ApplyArgs(args); err != nil {
		return nil, err
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyArgs maps the positional arguments onto the config. The fourth argument
// is either the literal DryRunToken (case-insensitive) or a hook path.
func (c *Config) ApplyArgs(args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	if len(args) > 4 {
		return fmt.Errorf("%w: got %d arguments", ErrUsage, len(args))
	}
	c.TVRoot = args[0]
	c.MovieRoot = args[1]
	c.Target = args[2]
	if len(args) == 4 {
		extra := strings.TrimSpace(args[3])
		if textutil.EqualFoldAny(extra, DryRunToken) {
			c.DryRun = true
		} else if extra != "" {
			c.HookPath = extra
		}
	}
	return nil
}

// ApplyEnv fills settings from MEDIASORT_* environment variables. Flags parsed
// afterwards take precedence.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if value, ok := lookup("MEDIASORT_HOOK"); ok && strings.TrimSpace(value) != "" {
		c.HookPath = strings.TrimSpace(value)
	}
	if value, ok := lookup("MEDIASORT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = strings.TrimSpace(value)
	}
	if value, ok := lookup("MEDIASORT_LOG_FORMAT"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = strings.TrimSpace(value)
	}
	if _, ok := lookup("NO_COLOR"); ok {
		c.NoColor = true
	}
}

// HookEnabled reports whether a post-move hook should run for this config.
func (c *Config) HookEnabled() bool {
	return !c.DryRun && strings.TrimSpace(c.HookPath) != ""
}

// ParseSize converts a humanized size ("50MB", "1.5 GiB", "50000000") to bytes.
func ParseSize(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errors.New("size is empty")
	}
	n, err := humanize.ParseBytes(value)
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", value, err)
	}
	if n > uint64(1<<62) {
		return 0, fmt.Errorf("parse size %q: value too large", value)
	}
	return int64(n), nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
