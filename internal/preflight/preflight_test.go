package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediasort/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir, true)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"), true)
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f, false)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDirectoryAccess_ReadOnly(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed for root")
	}
	dir := filepath.Join(t.TempDir(), "ro")
	if err := os.Mkdir(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	if result := CheckDirectoryAccess("test", dir, true); result.Passed {
		t.Fatal("expected failure for read-only dir when writes are required")
	}
	if result := CheckDirectoryAccess("test", dir, false); !result.Passed {
		t.Fatalf("expected read-only dir to pass for dry-run, got: %s", result.Detail)
	}
}

func TestCheckPathExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Movie.mkv")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if r := CheckPathExists("Target", file); !r.Passed || !strings.Contains(r.Detail, "file") {
		t.Fatalf("unexpected result for file: %+v", r)
	}
	if r := CheckPathExists("Target", dir); !r.Passed || !strings.Contains(r.Detail, "directory") {
		t.Fatalf("unexpected result for directory: %+v", r)
	}
	if r := CheckPathExists("Target", filepath.Join(dir, "missing")); r.Passed {
		t.Fatal("expected failure for missing target")
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	if results := RunAll(nil); results != nil {
		t.Fatalf("expected nil results, got %v", results)
	}
}

func TestRunAll_MinimalConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	results := RunAll(cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d: %+v", len(results), results)
	}
	if failed := Failed(results); len(failed) != 0 {
		t.Fatalf("expected all checks to pass, got %+v", failed)
	}
}

func TestRunAll_IncludesHook(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithHookScript("exit 0"))
	results := RunAll(cfg)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if !results[3].Passed || results[3].Detail != cfg.HookPath {
		t.Fatalf("unexpected hook result: %+v", results[3])
	}
}

func TestRunAll_DryRunSkipsHook(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithDryRun())
	cfg.HookPath = "/definitely/missing/hook"
	if results := RunAll(cfg); len(results) != 3 || len(Failed(results)) != 0 {
		t.Fatalf("expected hook check to be skipped in dry-run, got %+v", results)
	}
}

func TestRunAll_ReportsFailures(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.TVRoot = filepath.Join(testsupport.BaseDir(cfg), "absent")
	cfg.HookPath = filepath.Join(testsupport.BaseDir(cfg), "no-hook")

	results := RunAll(cfg)
	failed := Failed(results)
	if len(failed) != 1 || failed[0].Name != "TV directory" {
		t.Fatalf("expected only the TV directory to fail, got %+v", failed)
	}
	warnings := Warnings(results)
	if len(warnings) != 1 || warnings[0].Name != HookCheckName {
		t.Fatalf("expected a hook warning, got %+v", warnings)
	}
}

func TestDisableUnavailableHook(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.HookPath = filepath.Join(testsupport.BaseDir(cfg), "no-hook")

	if !DisableUnavailableHook(cfg, RunAll(cfg)) {
		t.Fatal("expected the missing hook to be disabled")
	}
	if cfg.HookPath != "" || cfg.HookEnabled() {
		t.Fatalf("expected hook cleared, got %q", cfg.HookPath)
	}

	usable := testsupport.NewConfig(t, testsupport.WithHookScript("exit 0"))
	if DisableUnavailableHook(usable, RunAll(usable)) || usable.HookPath == "" {
		t.Fatalf("usable hook must be kept, got %q", usable.HookPath)
	}
}
