// Package scan enumerates candidate files beneath a download directory.
package scan
