package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning reports that another run holds the lock file.
var ErrAlreadyRunning = errors.New("another mediasort run is already in progress")

type runLock struct {
	path string
	lock *flock.Flock
}

// acquireLock takes a non-blocking exclusive lock on path.
func acquireLock(path string) (*runLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}
	l := &runLock{path: path, lock: flock.New(path)}
	ok, err := l.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock %s)", ErrAlreadyRunning, path)
	}
	return l, nil
}

func (l *runLock) release() error {
	if l == nil {
		return nil
	}
	return l.lock.Unlock()
}
