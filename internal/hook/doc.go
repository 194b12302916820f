// Package hook runs the optional post-move executable.
//
// A hook receives the absolute destination path as its only argument. Its
// output is captured line by line for logging; failures are reported but
// never undo a completed move.
package hook
