package config_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mediasort/internal/config"
	"mediasort/internal/services"
)

func TestLoadExpandsPathsAndAppliesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, err := config.Load(config.Default(), []string{"~/tv", "~/movies", "~/downloads"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TVRoot != filepath.Join(tempHome, "tv") {
		t.Fatalf("unexpected tv root: %q", cfg.TVRoot)
	}
	if cfg.MovieRoot != filepath.Join(tempHome, "movies") {
		t.Fatalf("unexpected movie root: %q", cfg.MovieRoot)
	}
	if cfg.Target != filepath.Join(tempHome, "downloads") {
		t.Fatalf("unexpected target: %q", cfg.Target)
	}
	if cfg.DryRun {
		t.Fatal("expected dry-run disabled by default")
	}
	if cfg.HookPath != "" {
		t.Fatalf("expected no hook, got %q", cfg.HookPath)
	}
	if cfg.MinVideoSize != 50_000_000 {
		t.Fatalf("unexpected minimum size: %d", cfg.MinVideoSize)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Output != "table" {
		t.Fatalf("unexpected output: %q", cfg.Output)
	}
}

func TestLoadFourthArgument(t *testing.T) {
	base := t.TempDir()
	tests := []struct {
		name     string
		extra    string
		wantDry  bool
		wantHook string
	}{
		{name: "test token", extra: "test", wantDry: true},
		{name: "test token upper", extra: "TEST", wantDry: true},
		{name: "hook path", extra: filepath.Join(base, "hook.sh"), wantHook: filepath.Join(base, "hook.sh")},
		{name: "bare command", extra: "notify-library", wantHook: "notify-library"},
		{name: "blank", extra: "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(config.Default(), []string{base, base, base, tt.extra})
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.DryRun != tt.wantDry {
				t.Fatalf("DryRun = %v, want %v", cfg.DryRun, tt.wantDry)
			}
			if cfg.HookPath != tt.wantHook {
				t.Fatalf("HookPath = %q, want %q", cfg.HookPath, tt.wantHook)
			}
		})
	}
}

func TestLoadRejectsMissingArguments(t *testing.T) {
	for _, args := range [][]string{nil, {"a"}, {"a", "b"}, {"a", "b", "c", "d", "e"}} {
		if _, err := config.Load(config.Default(), args); !errors.Is(err, config.ErrUsage) {
			t.Fatalf("Load(%v) error = %v, want ErrUsage", args, err)
		}
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := t.TempDir()
	args := []string{base, base, base}
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"log level", func(c *config.Config) { c.Logging.Level = "loud" }, "log level"},
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }, "log format"},
		{"output", func(c *config.Config) { c.Output = "yaml" }, "output"},
		{"timeout", func(c *config.Config) { c.HookTimeout = -time.Second }, "hook timeout"},
		{"size", func(c *config.Config) { c.MinVideoSize = -1 }, "minimum video size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			_, err := config.Load(cfg, args)
			if !errors.Is(err, services.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"MEDIASORT_HOOK":       " /usr/local/bin/refresh ",
		"MEDIASORT_LOG_LEVEL":  "debug",
		"MEDIASORT_LOG_FORMAT": "json",
		"NO_COLOR":             "",
	}
	cfg := config.Default()
	cfg.ApplyEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if cfg.HookPath != "/usr/local/bin/refresh" {
		t.Fatalf("unexpected hook: %q", cfg.HookPath)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
	if !cfg.NoColor {
		t.Fatal("expected NO_COLOR to disable color")
	}
}

func TestHookEnabled(t *testing.T) {
	cfg := config.Default()
	if cfg.HookEnabled() {
		t.Fatal("expected hook disabled without a path")
	}
	cfg.HookPath = "/bin/true"
	if !cfg.HookEnabled() {
		t.Fatal("expected hook enabled")
	}
	cfg.DryRun = true
	if cfg.HookEnabled() {
		t.Fatal("expected dry-run to disable the hook")
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "50MB", want: 50_000_000},
		{in: "50000000", want: 50_000_000},
		{in: "1 GiB", want: 1 << 30},
		{in: "", wantErr: true},
		{in: "lots", wantErr: true},
	}
	for _, tt := range tests {
		got, err := config.ParseSize(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseSize(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseSize(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseSize(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
