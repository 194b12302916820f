package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"mediasort/internal/config"
	"mediasort/internal/organizer"
	"mediasort/internal/runner"
)

type summaryView struct {
	RunID       string          `json:"run_id" toml:"run_id"`
	DryRun      bool            `json:"dry_run" toml:"dry_run"`
	Interrupted bool            `json:"interrupted,omitempty" toml:"interrupted,omitempty"`
	Started     time.Time       `json:"started" toml:"started"`
	Finished    time.Time       `json:"finished" toml:"finished"`
	Duration    string          `json:"duration" toml:"duration"`
	Tally       runner.Tally    `json:"tally" toml:"tally"`
	Results     []resultView    `json:"results,omitempty" toml:"results,omitempty"`
	Rejected    []rejectionView `json:"rejected,omitempty" toml:"rejected,omitempty"`
}

type resultView struct {
	Source      string        `json:"source" toml:"source"`
	Kind        string        `json:"kind" toml:"kind"`
	Title       string        `json:"title" toml:"title"`
	Destination string        `json:"destination" toml:"destination"`
	Outcome     string        `json:"outcome" toml:"outcome"`
	Existing    string        `json:"existing,omitempty" toml:"existing,omitempty"`
	Error       string        `json:"error,omitempty" toml:"error,omitempty"`
	Subtitle    *subtitleView `json:"subtitle,omitempty" toml:"subtitle,omitempty"`
	Hook        *hookView     `json:"hook,omitempty" toml:"hook,omitempty"`
}

type subtitleView struct {
	Source      string `json:"source" toml:"source"`
	Destination string `json:"destination" toml:"destination"`
	Moved       bool   `json:"moved" toml:"moved"`
	Error       string `json:"error,omitempty" toml:"error,omitempty"`
}

type hookView struct {
	ExitCode int      `json:"exit_code" toml:"exit_code"`
	Duration string   `json:"duration" toml:"duration"`
	Stdout   []string `json:"stdout,omitempty" toml:"stdout,omitempty"`
	Stderr   []string `json:"stderr,omitempty" toml:"stderr,omitempty"`
	Error    string   `json:"error,omitempty" toml:"error,omitempty"`
}

type rejectionView struct {
	Path   string `json:"path" toml:"path"`
	Reason string `json:"reason" toml:"reason"`
}

func newSummaryView(s *runner.Summary) summaryView {
	view := summaryView{
		RunID:       s.RunID,
		DryRun:      s.DryRun,
		Interrupted: s.Interrupted,
		Started:     s.Started.UTC(),
		Finished:    s.Finished.UTC(),
		Duration:    s.Duration().Round(time.Millisecond).String(),
		Tally:       s.Tally(),
	}
	for _, r := range s.Results {
		view.Results = append(view.Results, newResultView(r))
	}
	for _, r := range s.Rejected {
		view.Rejected = append(view.Rejected, rejectionView(r))
	}
	return view
}

func newResultView(r organizer.Result) resultView {
	view := resultView{
		Source:      r.Source,
		Kind:        r.Kind.String(),
		Title:       r.Title,
		Destination: r.Destination,
		Outcome:     string(r.Outcome),
		Existing:    r.Existing,
		Error:       errString(r.Err),
	}
	if r.Subtitle != nil {
		view.Subtitle = &subtitleView{
			Source:      r.Subtitle.Source,
			Destination: r.Subtitle.Destination,
			Moved:       r.Subtitle.Moved,
			Error:       errString(r.Subtitle.Err),
		}
	}
	if r.Hook != nil {
		view.Hook = &hookView{
			ExitCode: r.Hook.ExitCode,
			Duration: r.Hook.Duration.Round(time.Millisecond).String(),
			Stdout:   r.Hook.Stdout,
			Stderr:   r.Hook.Stderr,
			Error:    errString(r.HookErr),
		}
	}
	return view
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func writeSummary(cmd *cobra.Command, cfg *config.Config, summary *runner.Summary) error {
	out := cmd.OutOrStdout()
	switch cfg.Output {
	case "none":
		return nil
	case "json":
		return writeJSON(cmd, newSummaryView(summary))
	case "toml":
		return toml.NewEncoder(out).Encode(newSummaryView(summary))
	default:
		colorize := !cfg.NoColor && shouldColorize(out)
		_, err := io.WriteString(out, renderSummary(summary, colorize))
		return err
	}
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderSummary(s *runner.Summary, colorize bool) string {
	var b strings.Builder

	if len(s.Results) > 0 {
		rows := make([][]string, 0, len(s.Results))
		for _, r := range s.Results {
			outcome := string(r.Outcome)
			if r.Failed() && r.Outcome != organizer.OutcomeError {
				outcome += " (with errors)"
			}
			rows = append(rows, []string{
				filepath.Base(r.Source),
				r.Kind.String(),
				r.Destination,
				colorizeText(outcome, outcomeStatus(r.Outcome), colorize),
			})
		}
		b.WriteString(renderTable([]string{"Source", "Kind", "Destination", "Outcome"}, rows, nil))
		b.WriteByte('\n')
	}

	if len(s.Rejected) > 0 {
		for _, line := range renderSectionHeader("Skipped", colorize) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		for _, r := range s.Rejected {
			fmt.Fprintf(&b, "%s%s: %s\n", statusIndent, r.Path, r.Reason)
		}
	}

	b.WriteString(renderTally(s, colorize))
	b.WriteByte('\n')
	return b.String()
}

func renderTally(s *runner.Summary, colorize bool) string {
	t := s.Tally()
	parts := make([]string, 0, 6)
	if s.DryRun {
		parts = append(parts, colorizeText(fmt.Sprintf("%d planned", t.Planned), statusInfo, colorize))
	} else {
		parts = append(parts, colorizeText(fmt.Sprintf("%d moved", t.Moved), statusOK, colorize))
	}
	parts = append(parts,
		colorizeText(fmt.Sprintf("%d duplicate", t.Duplicate), statusWarn, colorize),
		colorizeText(fmt.Sprintf("%d failed", t.Failed), statusError, colorize),
		fmt.Sprintf("%d skipped", t.Rejected),
		fmt.Sprintf("%d ignored", t.Ignored),
	)
	line := strings.Join(parts, ", ")
	if d := s.Duration(); d > 0 {
		line += " in " + d.Round(time.Millisecond).String()
	}
	if s.DryRun {
		line = "dry-run: " + line
	}
	if s.Interrupted {
		line += " (interrupted)"
	}
	return line
}
