package organizer

import (
	"os"
	"path/filepath"
	"strings"

	"mediasort/internal/fileutil"
	"mediasort/internal/media"
)

// VideoExists reports whether destination is already occupied, either by the
// exact path or by a sibling with the same stem and another video extension.
// The occupying path is returned alongside.
func VideoExists(destination string) (bool, string, error) {
	exists, err := fileutil.Exists(destination)
	if err != nil {
		return false, "", err
	}
	if exists {
		return true, destination, nil
	}

	dir := filepath.Dir(destination)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if fileutil.IsNotExist(err) {
			return false, "", nil
		}
		return false, "", err
	}
	stem := fileutil.Stem(destination)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if !media.IsVideoExtension(ext) {
			continue
		}
		if strings.TrimSuffix(name, ext) == stem {
			return true, filepath.Join(dir, name), nil
		}
	}
	return false, "", nil
}
