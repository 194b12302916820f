package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// consoleHandler writes one line per record:
//
//	2026-01-02T15:04:05Z INFO organizer: file placed destination=/lib/x.mkv
//
// Handler-level attributes are formatted once in WithAttrs. The component
// attribute is lifted out of the key/value list and printed before the message.
type consoleHandler struct {
	mu        *sync.Mutex
	w         io.Writer
	level     slog.Level
	addSource bool
	component string
	group     string
	fields    []byte
}

func newConsoleHandler(w io.Writer, level slog.Level, addSource bool) *consoleHandler {
	return &consoleHandler{mu: &sync.Mutex{}, w: w, level: level, addSource: addSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	component := h.component
	var fields []byte
	r.Attrs(func(attr slog.Attr) bool {
		fields = appendField(fields, h.group, attr, &component)
		return true
	})

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf := make([]byte, 0, 96+len(h.fields)+len(fields))
	buf = ts.UTC().AppendFormat(buf, time.RFC3339)
	buf = append(buf, ' ')
	buf = append(buf, levelLabel(r.Level)...)
	buf = append(buf, ' ')
	if component != "" {
		buf = append(buf, component...)
		buf = append(buf, ": "...)
	}
	msg := strings.TrimSpace(r.Message)
	if msg == "" {
		msg = "(no message)"
	}
	buf = append(buf, msg...)
	if h.addSource {
		if r.PC != 0 {
			src, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
			buf = fmt.Appendf(buf, " [%s:%d]", filepath.Base(src.File), src.Line)
		}
	}
	buf = append(buf, h.fields...)
	buf = append(buf, fields...)
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.fields = slices.Clip(h.fields)
	for _, attr := range attrs {
		clone.fields = appendField(clone.fields, h.group, attr, &clone.component)
	}
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = h.group + name + "."
	return &clone
}

// appendField writes " key=value" for attr, flattening groups into dotted
// keys. An ungrouped component attribute sets *component when it is still
// empty instead of being written.
func appendField(buf []byte, group string, attr slog.Attr, component *string) []byte {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return buf
	}
	if attr.Value.Kind() == slog.KindGroup {
		prefix := group
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			buf = appendField(buf, prefix, member, component)
		}
		return buf
	}
	if group == "" && attr.Key == FieldComponent {
		if *component == "" {
			*component = attr.Value.String()
		}
		return buf
	}
	key := group + attr.Key
	if key == "" {
		return buf
	}
	buf = append(buf, ' ')
	buf = append(buf, key...)
	buf = append(buf, '=')
	return append(buf, formatValue(attr.Value)...)
}

func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return quoteIfNeeded(v.String())
	case slog.KindTime:
		return v.Time().UTC().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return quoteIfNeeded(err.Error())
		}
		return quoteIfNeeded(fmt.Sprint(v.Any()))
	default:
		// Numbers, bools and durations never need quoting.
		return v.String()
	}
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsFunc(s, func(r rune) bool { return r <= ' ' || r == '=' || r == '"' }) {
		return strconv.Quote(s)
	}
	return s
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
