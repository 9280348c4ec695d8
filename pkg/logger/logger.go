package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger provides structured logging with context support
type Logger struct {
	logger *slog.Logger
}

// Config holds logger configuration
type Config struct {
	Level  string    `json:"level"`
	Format string    `json:"format"` // "json" or "text"
	Output io.Writer `json:"-"`      // defaults to stdout
}

type ctxKey struct{}

// ContextWithRequestID returns a context carrying a request id that
// WithContext attaches to every log line.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestIDFromContext returns the request id stored by ContextWithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// New creates a new structured logger
func New(config Config) *Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(config.Level),
	}

	out := config.Output
	if out == nil {
		out = os.Stdout
	}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &Logger{
		logger: slog.New(handler),
	}
}

// Slog exposes the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// WithContext returns a logger carrying the request id found in ctx, if any.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if id := RequestIDFromContext(ctx); id != "" {
		return l.WithField("request_id", id)
	}
	return l
}

// WithFields returns a logger with additional fields
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{
		logger: l.logger.With(args...),
	}
}

// WithField returns a logger with a single additional field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		logger: l.logger.With(key, value),
	}
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	l.logger.Info(msg, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.logger.Debug(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(err error, msg string, args ...interface{}) {
	if err != nil {
		args = append(args, "error", err)
	}
	l.logger.Error(msg, args...)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(err error, msg string, args ...interface{}) {
	l.Error(err, msg, args...)
	os.Exit(1)
}

var defaultLogger *Logger

// Init initializes the default logger
func Init(config Config) {
	defaultLogger = New(config)
}

// Default returns the logger set by Init, or a text logger at info level.
func Default() *Logger {
	if defaultLogger != nil {
		return defaultLogger
	}
	return New(Config{Level: "info", Format: "text"})
}

// Global convenience functions that use the default logger
func Info(msg string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Info(msg, args...)
	}
}

func Debug(msg string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Debug(msg, args...)
	}
}

func Warn(msg string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Warn(msg, args...)
	}
}

func Error(err error, msg string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Error(err, msg, args...)
	}
}

func Fatal(err error, msg string, args ...interface{}) {
	Default().Fatal(err, msg, args...)
}

func WithFields(fields map[string]interface{}) *Logger {
	return Default().WithFields(fields)
}

func WithField(key string, value interface{}) *Logger {
	return Default().WithField(key, value)
}

func WithContext(ctx context.Context) *Logger {
	return Default().WithContext(ctx)
}
