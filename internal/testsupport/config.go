package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"mediasort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose TV root, movie root, and download target
// are fresh directories under a per-test temp dir. The lock file lives there
// too so parallel packages never contend.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.TVRoot = filepath.Join(base, "tv")
	cfgVal.MovieRoot = filepath.Join(base, "movies")
	cfgVal.Target = filepath.Join(base, "downloads")
	cfgVal.LockPath = filepath.Join(base, "mediasort.lock")
	cfgVal.Output = "none"

	for _, dir := range []string{cfgVal.TVRoot, cfgVal.MovieRoot, cfgVal.Target} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDryRun enables dry-run mode on the test config.
func WithDryRun() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.DryRun = true
	}
}

// WithHookScript writes an executable shell hook with the given body and
// points the config at it.
func WithHookScript(body string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.HookPath = WriteScript(b.t, filepath.Join(b.baseDir, "bin", "hook.sh"), body)
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "bin")
		for _, name := range names {
			WriteScript(b.t, filepath.Join(binDir, name), "exit 0")
		}
		oldPath := os.Getenv("PATH")
		if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
			b.t.Fatalf("set PATH: %v", err)
		}
		b.t.Cleanup(func() {
			_ = os.Setenv("PATH", oldPath)
		})
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Target)
}
