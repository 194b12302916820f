// Package config resolves, normalizes, and validates mediasort run settings.
//
// Settings come from the positional arguments (TV root, movie root, target and
// the optional dry-run token or hook), MEDIASORT_* environment variables and
// command-line flags. Paths are expanded (including tilde shortcuts) and made
// absolute so downstream packages never see relative or blank values. There is
// no configuration file.
package config
