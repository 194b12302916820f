package organizer

import (
	"mediasort/internal/hook"
	"mediasort/internal/media"
)

// Outcome is the primary result of placing one file.
type Outcome string

const (
	OutcomeMoved     Outcome = "moved"
	OutcomePlanned   Outcome = "planned"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeError     Outcome = "error"
)

// SubtitleResult reports the companion .srt handling for a placement.
type SubtitleResult struct {
	Source      string
	Destination string
	Moved       bool
	Err         error
}

// Result describes what happened (or would happen, in dry-run) to one file.
type Result struct {
	Source      string
	Kind        media.Kind
	Title       string
	Destination string
	// Existing is the library file that made this placement a duplicate.
	Existing string
	Outcome  Outcome
	Err      error
	Subtitle *SubtitleResult
	Hook     *hook.Output
	HookErr  error
	DryRun   bool
}

// Failed reports whether the primary move or any follow-up step failed. A
// duplicate carries ErrConflict in Err but is not a failure.
func (r Result) Failed() bool {
	if r.Outcome == OutcomeError || r.HookErr != nil {
		return true
	}
	return r.Subtitle != nil && r.Subtitle.Err != nil
}
