package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"mediasort/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and is accessible.
// When writable is false only read and search permission are required.
func CheckDirectoryAccess(name, path string, writable bool) Result {
	if path == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}

	mode, label := uint32(unix.R_OK|unix.X_OK), "read ok"
	if writable {
		mode, label = unix.R_OK|unix.W_OK|unix.X_OK, "read/write ok"
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, label)}
}

// CheckPathExists verifies that path names an existing file or directory.
func CheckPathExists(name, path string) Result {
	if path == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	kind := "file"
	if info.IsDir() {
		kind = "directory"
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, kind)}
}

// HookCheckName names the result produced by CheckHook.
const HookCheckName = "Post-move hook"

// CheckHook verifies that the post-move hook resolves to an executable.
func CheckHook(command string) Result {
	status := deps.CheckBinaries([]deps.Requirement{deps.HookRequirement(command)})[0]
	result := Result{Name: HookCheckName, Optional: status.Optional}
	if !status.Available {
		result.Detail = status.Detail
		return result
	}
	result.Passed = true
	result.Detail = status.Resolved
	return result
}
