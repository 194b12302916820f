// Package fileutil wraps the small set of filesystem moves used during
// placement. Renames never fall back to copying.
package fileutil
