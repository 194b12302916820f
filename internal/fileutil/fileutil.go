package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

var (
	// ErrCrossDevice marks a rename that failed because source and destination
	// live on different filesystems. Files are never copied as a fallback.
	ErrCrossDevice = errors.New("cross-device rename")
	// ErrDestinationExists marks a no-replace rename whose destination is taken.
	ErrDestinationExists = errors.New("destination exists")
)

// renameFunc is swapped in tests to simulate EXDEV.
var renameFunc = os.Rename

// Exists reports whether path names an existing entry. A parent component
// that is not a directory also means the entry does not exist. Other stat
// errors are returned.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsNotExist reports whether err means a path is absent, including ENOTDIR
// from a non-directory parent.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, unix.ENOTDIR)
}

// ReplaceExt swaps the extension of path for ext (which includes the dot).
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Rename moves src to dst. EXDEV failures are additionally tagged with
// ErrCrossDevice.
func Rename(src, dst string) error {
	if err := renameFunc(src, dst); err != nil {
		if isCrossDevice(err) {
			return fmt.Errorf("%w: %w", ErrCrossDevice, err)
		}
		return err
	}
	return nil
}

// RenameNoReplace behaves like Rename but refuses to overwrite dst.
func RenameNoReplace(src, dst string) error {
	exists, err := Exists(dst)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	}
	return Rename(src, dst)
}

func isCrossDevice(err error) bool {
	if errors.Is(err, unix.EXDEV) {
		return true
	}
	var linkErr *os.LinkError
	return errors.As(err, &linkErr) && errors.Is(linkErr.Err, unix.EXDEV)
}
