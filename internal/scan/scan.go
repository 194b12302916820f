package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File is a regular file found under the scan root.
type File struct {
	Path string
	Name string
	Size int64
}

// Option customizes a scan.
type Option func(*options)

type options struct {
	onSkip func(path string, err error)
}

// WithSkipHandler registers a callback for directories that could not be read.
// Such directories are skipped either way.
func WithSkipHandler(fn func(path string, err error)) Option {
	return func(o *options) {
		o.onSkip = fn
	}
}

// Files lists every regular file under root, or root itself when it is a
// regular file. Entries under any exclude path are skipped, as are symlinks
// and other non-regular files. Results are sorted by path.
func Files(root string, exclude []string, opts ...Option) ([]File, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat scan root: %w", err)
	}
	excluded := cleanExcludes(exclude)
	if isExcluded(root, excluded) {
		return nil, nil
	}
	if info.Mode().IsRegular() {
		return []File{{Path: root, Name: info.Name(), Size: info.Size()}}, nil
	}
	if !info.IsDir() {
		return nil, nil
	}

	files := make([]File, 0, 64)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			if o.onSkip != nil {
				o.onSkip(path, walkErr)
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if isExcluded(path, excluded) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			if o.onSkip != nil {
				o.onSkip(path, err)
			}
			return nil
		}
		files = append(files, File{Path: path, Name: d.Name(), Size: fi.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func cleanExcludes(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, filepath.Clean(p))
	}
	return out
}

func isExcluded(path string, excluded []string) bool {
	for _, base := range excluded {
		if path == base || strings.HasPrefix(path, base+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
