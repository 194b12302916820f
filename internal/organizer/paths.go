package organizer

import (
	"path/filepath"

	"mediasort/internal/media"
)

// DestinationName returns the library filename for desc: "Title MARKER.ext"
// for episodes and "Title.ext" for movies.
func DestinationName(desc media.Descriptor) string {
	base := desc.Common()
	if tv, ok := desc.(media.TV); ok {
		return base.Title + " " + tv.Marker + base.Extension
	}
	return base.Title + base.Extension
}

// DestinationDir returns the title directory for desc under the matching root.
func DestinationDir(desc media.Descriptor, tvRoot, movieRoot string) string {
	root := movieRoot
	if desc.Kind() == media.KindTV {
		root = tvRoot
	}
	return filepath.Join(root, desc.Common().Title)
}

// DestinationPath joins DestinationDir and DestinationName.
func DestinationPath(desc media.Descriptor, tvRoot, movieRoot string) string {
	return filepath.Join(DestinationDir(desc, tvRoot, movieRoot), DestinationName(desc))
}
