// Package main hosts the mediasort CLI entrypoint.
//
// The single Cobra command resolves configuration from positional arguments,
// flags, and MEDIASORT_* environment variables, runs the startup checks, and
// hands off to the runner. The run summary is printed to stdout as a table,
// JSON, or TOML; logs stay on stderr.
package main
