// Package logging assembles structured slog loggers and formatting helpers used
// across mediasort.
//
// It owns the console and JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so placement code automatically tags log
// lines with the run ID, stage, and source path. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
package logging
