// Package preflight validates a run configuration before any file is touched.
//
// Checks cover the library roots, the download target, and the optional
// post-move hook. Any failure aborts the run.
package preflight
