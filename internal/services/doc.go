// Package services defines shared utilities used by the placement engine and
// the hook runner.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, stage names, and source paths for
//     logging.
//   - Structured error markers plus the Wrap helper so callers can tell a
//     conflict from a filesystem failure or a misbehaving hook.
//
// Use these helpers when wiring new logic so error handling and observability
// stay uniform across a run.
package services
