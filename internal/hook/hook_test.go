package hook

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mediasort/internal/services"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hook.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write hook script: %v", err)
	}
	return path
}

func TestExecPassesDestinationAndCapturesOutput(t *testing.T) {
	script := writeScript(t, `echo "moved: $1"
echo ""
echo "warning line" >&2`)

	out, err := Exec{Path: script}.Run(context.Background(), "/tv/Show/Show S01E01.mkv")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out.Stdout) != 1 || out.Stdout[0] != "moved: /tv/Show/Show S01E01.mkv" {
		t.Fatalf("unexpected stdout: %q", out.Stdout)
	}
	if len(out.Stderr) != 1 || out.Stderr[0] != "warning line" {
		t.Fatalf("unexpected stderr: %q", out.Stderr)
	}
	if out.ExitCode != 0 {
		t.Fatalf("exit code = %d", out.ExitCode)
	}
}

func TestExecNonZeroExit(t *testing.T) {
	script := writeScript(t, `echo "refresh failed" >&2
exit 3`)

	out, err := Exec{Path: script}.Run(context.Background(), "/movies/M/M.mkv")
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
	if out.ExitCode != 3 {
		t.Fatalf("exit code = %d, want 3", out.ExitCode)
	}
	if len(out.Stderr) != 1 || out.Stderr[0] != "refresh failed" {
		t.Fatalf("expected stderr to be kept, got %q", out.Stderr)
	}
}

func TestExecTimeout(t *testing.T) {
	script := writeScript(t, `sleep 30`)

	started := time.Now()
	_, err := Exec{Path: script, Timeout: 200 * time.Millisecond}.Run(context.Background(), "/x.mkv")
	if !errors.Is(err, services.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if elapsed := time.Since(started); elapsed > 10*time.Second {
		t.Fatalf("timeout not enforced, took %s", elapsed)
	}
}

func TestExecMissingBinary(t *testing.T) {
	_, err := Exec{Path: filepath.Join(t.TempDir(), "missing")}.Run(context.Background(), "/x.mkv")
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
}

func TestExecEmptyPath(t *testing.T) {
	_, err := Exec{}.Run(context.Background(), "/x.mkv")
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestExecTrimsTrailingWhitespace(t *testing.T) {
	script := writeScript(t, `printf 'line one  \r\n\n   \nline two\n'`)
	out, err := Exec{Path: script}.Run(context.Background(), "/x.mkv")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Join(out.Stdout, "|") != "line one|line two" {
		t.Fatalf("unexpected stdout: %q", out.Stdout)
	}
}
