// Package testsupport provides helpers shared by package tests: configs backed
// by temp directories, sparse video fixtures, and executable hook scripts.
package testsupport
