package organizer

import (
	"mediasort/internal/fileutil"
)

const subtitleExt = ".srt"

// placeSubtitle moves the .srt sitting next to source so it sits next to
// destination. It returns nil when there is no subtitle. An existing
// destination subtitle is never overwritten.
func placeSubtitle(source, destination string, dryRun bool) *SubtitleResult {
	src := fileutil.ReplaceExt(source, subtitleExt)
	exists, err := fileutil.Exists(src)
	if err != nil {
		return &SubtitleResult{Source: src, Err: err}
	}
	if !exists {
		return nil
	}

	result := &SubtitleResult{Source: src, Destination: fileutil.ReplaceExt(destination, subtitleExt)}
	if dryRun {
		taken, err := fileutil.Exists(result.Destination)
		switch {
		case err != nil:
			result.Err = err
		case taken:
			result.Err = fileutil.ErrDestinationExists
		}
		return result
	}

	if err := fileutil.RenameNoReplace(result.Source, result.Destination); err != nil {
		result.Err = err
		return result
	}
	result.Moved = true
	return result
}
