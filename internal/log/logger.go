// Package log decorates slog with a fixed component attribute so every line
// can be traced back to the subsystem that wrote it.
package log

import (
	"log/slog"
	"os"
	"strings"
)

type Logger struct {
	*slog.Logger
	handler   slog.Handler
	component string
}

// New builds a logger for a component. Level and format come from the
// LOG_LEVEL (debug|info|warn|error) and LOG_FORMAT (text|json) environment
// variables so binaries need no logging flags.
func New(component string) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(os.Getenv("LOG_LEVEL"))}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger:    slog.New(handler).With(FieldComponent, component),
		handler:   handler,
		component: component,
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a logger carrying extra attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), handler: l.handler, component: l.component}
}

// WithComponent re-stamps a root logger for another component. Attributes
// added with With are not carried over.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    slog.New(l.handler).With(FieldComponent, component),
		handler:   l.handler,
		component: component,
	}
}

// Component returns the component this logger is stamped with.
func (l *Logger) Component() string {
	return l.component
}

// SetDefault routes the bare slog package-level calls through this logger,
// so library code using slog.InfoContext lands in the same stream.
func SetDefault(l *Logger) {
	slog.SetDefault(l.Logger)
}
