package hook

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"mediasort/internal/services"
)

// Runner invokes the post-move hook for a placed file.
type Runner interface {
	Run(ctx context.Context, destination string) (Output, error)
}

// Output captures what a hook printed. Empty lines are dropped.
type Output struct {
	Stdout   []string      `json:"stdout,omitempty" toml:"stdout,omitempty"`
	Stderr   []string      `json:"stderr,omitempty" toml:"stderr,omitempty"`
	ExitCode int           `json:"exit_code" toml:"exit_code"`
	Duration time.Duration `json:"duration" toml:"duration"`
}

// Exec runs an executable with the destination path as its only argument.
type Exec struct {
	Path string
	// Timeout bounds a single invocation. Zero waits indefinitely.
	Timeout time.Duration
}

// Run starts the hook and waits for it. Stdout and stderr are read
// concurrently and returned even when the hook fails.
func (e Exec) Run(ctx context.Context, destination string) (Output, error) {
	if strings.TrimSpace(e.Path) == "" {
		return Output{}, services.Wrap(services.ErrConfiguration, "hook", "run", "hook path is empty", nil)
	}

	runCtx := ctx
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, e.Path, destination) //nolint:gosec
	// Cancellation kills the whole process group, including any children
	// still holding the output pipes.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Output{}, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Output{}, fmt.Errorf("stderr pipe: %w", err)
	}

	started := time.Now()
	if err := cmd.Start(); err != nil {
		return Output{}, services.Wrap(services.ErrExternalTool, "hook", "start", e.Path, err)
	}

	var out Output
	var wg sync.WaitGroup
	wg.Add(2)
	go collect(&wg, stdout, &out.Stdout)
	go collect(&wg, stderr, &out.Stderr)
	wg.Wait()

	waitErr := cmd.Wait()
	out.Duration = time.Since(started)
	out.ExitCode = cmd.ProcessState.ExitCode()

	switch {
	case waitErr == nil:
		return out, nil
	case errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
		return out, services.Wrap(services.ErrTimeout, "hook", "wait", fmt.Sprintf("exceeded %s", e.Timeout), runCtx.Err())
	case ctx.Err() != nil:
		return out, ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return out, services.Wrap(services.ErrExternalTool, "hook", "wait", fmt.Sprintf("exit status %d", exitErr.ExitCode()), waitErr)
	}
	return out, services.Wrap(services.ErrExternalTool, "hook", "wait", e.Path, waitErr)
}

func collect(wg *sync.WaitGroup, r io.Reader, dst *[]string) {
	defer wg.Done()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		*dst = append(*dst, line)
	}
	// Drain anything left after a scan error so the child never blocks on a
	// full pipe.
	_, _ = io.Copy(io.Discard, r)
}
