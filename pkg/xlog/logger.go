package xlog

import (
	"context"
	"fmt"
	"log/slog"
)

// New creates a Logger from c.
func New(c Config) *Logger {
	level := &slog.LevelVar{}
	level.Set(c.Level)
	return &Logger{
		slog:  slog.New(c.buildHandler(level)),
		level: level,
	}
}

// Logger is a levelled slog.Logger whose level can be changed after
// construction. Derived loggers share the level of their parent.
type Logger struct {
	slog  *slog.Logger
	level *slog.LevelVar
}

// SetLevel changes the minimum level of l and every logger derived from it.
func (l *Logger) SetLevel(lvl slog.Level) { l.level.Set(lvl) }

// Enabled reports whether l emits records at level.
func (l *Logger) Enabled(level slog.Level) bool {
	return l.slog.Enabled(context.Background(), level)
}

// With returns a Logger that includes the given attributes in each record.
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}
	return &Logger{slog: l.slog.With(args...), level: l.level}
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }

// Debugf logs at LevelDebug with a formatted message.
func (l *Logger) Debugf(format string, args ...any) {
	l.slog.Debug(fmt.Sprintf(format, args...))
}

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) { l.slog.Info(msg, args...) }

// Infof logs at LevelInfo with a formatted message.
func (l *Logger) Infof(format string, args ...any) {
	l.slog.Info(fmt.Sprintf(format, args...))
}

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) { l.slog.Warn(msg, args...) }

// Warnf logs at LevelWarn with a formatted message.
func (l *Logger) Warnf(format string, args ...any) {
	l.slog.Warn(fmt.Sprintf(format, args...))
}

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// Errorf logs at LevelError with a formatted message.
func (l *Logger) Errorf(format string, args ...any) {
	l.slog.Error(fmt.Sprintf(format, args...))
}
