package deps

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Requirement defines an external executable a run relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Resolved    string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// HookRequirement describes the configured post-move hook. The hook is
// optional: a run proceeds without it when it cannot be resolved.
func HookRequirement(command string) Requirement {
	return Requirement{
		Name:        "Post-move hook",
		Command:     command,
		Description: "Invoked with the destination path after each move",
		Optional:    true,
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
// Commands containing a path separator are checked in place, bare names are
// resolved through PATH.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		resolved, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = lookupDetail(cmd)
			results = append(results, status)
			continue
		}
		status.Resolved = resolved
		status.Available = true
		results = append(results, status)
	}
	return results
}

func lookupDetail(cmd string) string {
	if !strings.ContainsRune(cmd, os.PathSeparator) {
		return fmt.Sprintf("binary %q not found in PATH", cmd)
	}
	info, err := os.Stat(cmd)
	switch {
	case err != nil:
		return fmt.Sprintf("binary %q not found", cmd)
	case info.IsDir():
		return fmt.Sprintf("%q is a directory", cmd)
	case !isExecutable(info):
		return fmt.Sprintf("%q is not executable", cmd)
	default:
		return fmt.Sprintf("binary %q not usable", cmd)
	}
}

func isExecutable(info os.FileInfo) bool {
	if info == nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
