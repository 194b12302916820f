package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.mkv")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ok, err := Exists(path)
	if err != nil || !ok {
		t.Fatalf("Exists(present) = %v, %v", ok, err)
	}
	ok, err = Exists(filepath.Join(dir, "missing.mkv"))
	if err != nil || ok {
		t.Fatalf("Exists(missing) = %v, %v", ok, err)
	}
	// present.mkv is a file, so nothing can exist beneath it.
	ok, err = Exists(filepath.Join(path, "child.srt"))
	if err != nil || ok {
		t.Fatalf("Exists(below a file) = %v, %v", ok, err)
	}
}

func TestReplaceExtAndStem(t *testing.T) {
	if got := ReplaceExt("/tv/Show/Show S01E01.mkv", ".srt"); got != "/tv/Show/Show S01E01.srt" {
		t.Fatalf("ReplaceExt = %q", got)
	}
	if got := ReplaceExt("/downloads/noext", ".srt"); got != "/downloads/noext.srt" {
		t.Fatalf("ReplaceExt without extension = %q", got)
	}
	if got := Stem("/movies/Movie Name (2022)/Movie Name (2022).mkv"); got != "Movie Name (2022)" {
		t.Fatalf("Stem = %q", got)
	}
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mkv")
	dst := filepath.Join(dir, "dst.mkv")
	if err := os.WriteFile(src, []byte("video"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Rename(src, dst); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if _, err := os.Stat(src); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected source removed, got %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil || string(got) != "video" {
		t.Fatalf("unexpected destination content %q: %v", got, err)
	}
}

func TestRenameTagsCrossDevice(t *testing.T) {
	orig := renameFunc
	t.Cleanup(func() { renameFunc = orig })
	renameFunc = func(src, dst string) error {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: unix.EXDEV}
	}

	err := Rename("/a/src.mkv", "/b/dst.mkv")
	if !errors.Is(err, ErrCrossDevice) {
		t.Fatalf("expected ErrCrossDevice, got %v", err)
	}
	if !errors.Is(err, unix.EXDEV) {
		t.Fatalf("expected EXDEV to remain in chain, got %v", err)
	}
}

func TestRenameNoReplace(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.srt")
	dst := filepath.Join(dir, "b.srt")
	for _, p := range []string{src, dst} {
		if err := os.WriteFile(p, []byte(filepath.Base(p)), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := RenameNoReplace(src, dst); !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}
	got, _ := os.ReadFile(dst)
	if string(got) != "b.srt" {
		t.Fatalf("destination overwritten: %q", got)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("source should remain: %v", err)
	}
}
