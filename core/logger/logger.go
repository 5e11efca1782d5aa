package logger

import (
	"log/slog"
	"os"
	"strings"
)

type options struct {
	appName     string
	level       slog.Level
	development bool
}

// Option configures the logger constructor.
type Option func(*options)

// WithDevelopment enables human-readable text output at debug level and tags
// every record with the application name.
func WithDevelopment(appName string) Option {
	return func(o *options) {
		o.appName = appName
		o.development = true
		o.level = slog.LevelDebug
	}
}

// WithAppName tags every record with the application name.
func WithAppName(appName string) Option {
	return func(o *options) {
		o.appName = appName
	}
}

// WithLevel sets the minimum level from its string form ("debug", "info",
// "warn", "error"). Unknown values fall back to info.
func WithLevel(level string) Option {
	return func(o *options) {
		o.level = ParseLevel(level)
	}
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger writing to stdout. JSON output by default, text output
// in development mode.
func New(opts ...Option) *slog.Logger {
	o := &options{level: slog.LevelInfo}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var handler slog.Handler
	if o.development {
		handler = slog.NewTextHandler(os.Stdout, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, handlerOpts)
	}

	log := slog.New(handler)
	if o.appName != "" {
		log = log.With(slog.String("app", o.appName))
	}
	return log
}
