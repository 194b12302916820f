// Package runner drives a single organize pass: it takes the run lock, walks
// the target, filters and classifies each file, and hands descriptors to the
// organizer one at a time.
package runner
