package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrConflict      = errors.New("destination conflict")
	ErrFilesystem    = errors.New("filesystem error")
	ErrExternalTool  = errors.New("external tool error")
	ErrNotFound      = errors.New("not found")
	ErrTimeout       = errors.New("timeout")
	ErrTransient     = errors.New("transient failure")
)

var markers = []error{
	ErrValidation,
	ErrConfiguration,
	ErrConflict,
	ErrFilesystem,
	ErrExternalTool,
	ErrNotFound,
	ErrTimeout,
	ErrTransient,
}

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns the short label of the first marker found in err's chain, or
// "unknown" when err carries none.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, marker := range markers {
		if errors.Is(err, marker) {
			return marker.Error()
		}
	}
	return "unknown"
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
