package preflight

import (
	"mediasort/internal/config"
)

// Result reports the outcome of a single preflight check. A failed optional
// check is a warning and does not stop the run.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// RunAll executes every startup check for the given config. The library roots
// must be writable unless the run is a dry-run.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	writable := !cfg.DryRun
	results := []Result{
		CheckDirectoryAccess("TV directory", cfg.TVRoot, writable),
		CheckDirectoryAccess("Movie directory", cfg.MovieRoot, writable),
		CheckPathExists("Target", cfg.Target),
	}

	if cfg.HookEnabled() {
		results = append(results, CheckHook(cfg.HookPath))
	}

	return results
}

// Failed returns the required checks that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed && !r.Optional {
			failed = append(failed, r)
		}
	}
	return failed
}

// Warnings returns the optional checks that did not pass.
func Warnings(results []Result) []Result {
	var warnings []Result
	for _, r := range results {
		if !r.Passed && r.Optional {
			warnings = append(warnings, r)
		}
	}
	return warnings
}

// DisableUnavailableHook clears cfg.HookPath when the hook check failed and
// reports whether it did.
func DisableUnavailableHook(cfg *config.Config, results []Result) bool {
	if cfg == nil {
		return false
	}
	for _, r := range results {
		if r.Name == HookCheckName && !r.Passed {
			cfg.HookPath = ""
			return true
		}
	}
	return false
}
