// Package media turns release filenames into structured descriptors.
//
// Classify performs a single left-to-right scan over the dot-normalized
// filename tokens and stops at the first quality tag or season/episode marker.
// A release year also ends the scan after one token of lookahead.
// Descriptors are tagged variants: a Movie carries no marker at all, a TV
// descriptor always carries one.
package media
