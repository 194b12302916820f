package media

import (
	"errors"
	"path/filepath"
	"strings"
)

// MinVideoSize is the smallest file, in bytes, considered a real video.
const MinVideoSize int64 = 50_000_000

var (
	// ErrNotVideo marks a file whose extension is not a recognized video container.
	ErrNotVideo = errors.New("not a video file")
	// ErrTooSmall marks a video below the minimum size (samples, trailers, partial downloads).
	ErrTooSmall = errors.New("below minimum video size")
	// ErrEmptyTitle marks a filename that yields no usable title.
	ErrEmptyTitle = errors.New("no usable title")
)

// VideoExtensions lists the recognized containers. Order matters only for
// display.
var VideoExtensions = []string{".mp4", ".avi", ".mkv", ".mov", ".wmv"}

// IsVideoExtension reports whether ext (with leading dot) is a recognized
// container, ignoring case.
func IsVideoExtension(ext string) bool {
	for _, candidate := range VideoExtensions {
		if strings.EqualFold(ext, candidate) {
			return true
		}
	}
	return false
}

// IsVideo reports whether name ends in a recognized video extension.
func IsVideo(name string) bool {
	return IsVideoExtension(filepath.Ext(name))
}

// Gate applies the extension and size filters. Both failures are silent skips.
func Gate(name string, size, minSize int64) error {
	if !IsVideo(name) {
		return ErrNotVideo
	}
	if size < minSize {
		return ErrTooSmall
	}
	return nil
}
