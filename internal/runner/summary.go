package runner

import (
	"time"

	"mediasort/internal/organizer"
)

// Rejection records a file that was skipped for a reason worth reporting.
type Rejection struct {
	Path   string
	Reason string
}

// Summary collects the results of one run.
type Summary struct {
	RunID       string
	DryRun      bool
	Started     time.Time
	Finished    time.Time
	Results     []organizer.Result
	Rejected    []Rejection
	Ignored     int
	Interrupted bool
}

// Tally counts results by outcome.
type Tally struct {
	Moved     int `json:"moved" toml:"moved"`
	Planned   int `json:"planned" toml:"planned"`
	Duplicate int `json:"duplicate" toml:"duplicate"`
	Failed    int `json:"failed" toml:"failed"`
	Rejected  int `json:"rejected" toml:"rejected"`
	Ignored   int `json:"ignored" toml:"ignored"`
}

// Tally summarizes the run. Failed counts primary move errors only.
func (s *Summary) Tally() Tally {
	t := Tally{Rejected: len(s.Rejected), Ignored: s.Ignored}
	for _, r := range s.Results {
		switch r.Outcome {
		case organizer.OutcomeMoved:
			t.Moved++
		case organizer.OutcomePlanned:
			t.Planned++
		case organizer.OutcomeDuplicate:
			t.Duplicate++
		case organizer.OutcomeError:
			t.Failed++
		}
	}
	return t
}

// Duration returns the wall time of the run.
func (s *Summary) Duration() time.Duration {
	if s.Finished.IsZero() {
		return 0
	}
	return s.Finished.Sub(s.Started)
}
