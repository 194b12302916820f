// Package textutil provides the small string helpers shared by the filename
// classifier and the CLI: case-insensitive comparison against a word list and
// sentence casing for display titles.
package textutil
