package deps

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Resolved != present {
		t.Fatalf("unexpected resolved path: %s", results[0].Resolved)
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if !strings.Contains(results[1].Detail, "PATH") {
		t.Fatalf("expected PATH detail for missing binary, got %q", results[1].Detail)
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}
}

func TestCheckBinariesResolvesFromPath(t *testing.T) {
	binDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(binDir, "refresh-library"), []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	results := CheckBinaries([]Requirement{HookRequirement("refresh-library")})
	if !results[0].Available || results[0].Resolved != filepath.Join(binDir, "refresh-library") {
		t.Fatalf("unexpected status: %#v", results[0])
	}
}

func TestCheckBinariesDetails(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.sh")
	if err := os.WriteFile(plain, []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	tests := []struct {
		name    string
		command string
		detail  string
	}{
		{"empty", "  ", "not configured"},
		{"not executable", plain, "not executable"},
		{"directory", dir, "directory"},
		{"missing path", filepath.Join(dir, "missing"), "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := CheckBinaries([]Requirement{HookRequirement(tt.command)})[0]
			if status.Available {
				t.Fatalf("expected unavailable status for %q", tt.command)
			}
			if !strings.Contains(status.Detail, tt.detail) {
				t.Fatalf("detail %q does not mention %q", status.Detail, tt.detail)
			}
		})
	}
}

func TestHookRequirementIsOptional(t *testing.T) {
	status := CheckBinaries([]Requirement{HookRequirement("clearly-not-present-hook")})[0]
	if !status.Optional || status.Available {
		t.Fatalf("expected an optional, unavailable hook, got %#v", status)
	}
}
