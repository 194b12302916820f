// Package organizer places classified media into the TV and movie libraries.
//
// Each placement computes the title directory and filename, refuses to
// overwrite an existing copy (in any recognized container), renames the file,
// carries a sibling .srt subtitle along, and finally invokes the optional
// post-move hook. Dry-run mode makes the same decisions without touching the
// filesystem.
package organizer
