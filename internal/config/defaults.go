package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultMinVideoSize filters trailers, samples, and partial downloads.
	DefaultMinVideoSize int64 = 50_000_000

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
	defaultOutput    = "table"
	lockFileName     = "mediasort.lock"
)

// Default returns a Config populated with repository defaults. Roots and the
// target have no defaults and must come from the positional arguments.
func Default() Config {
	return Config{
		MinVideoSize: DefaultMinVideoSize,
		LockPath:     defaultLockPath(),
		Output:       defaultOutput,
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultLockPath() string {
	if base, ok := os.LookupEnv("XDG_RUNTIME_DIR"); ok && base != "" {
		return filepath.Join(base, lockFileName)
	}
	return filepath.Join(os.TempDir(), lockFileName)
}
