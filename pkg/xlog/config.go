package xlog

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewConfig returns the default logging config: text format on stderr at
// LevelInfo, no file output.
func NewConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Format:    "text",
		Writer:    os.Stderr,
		MaxSizeMB: 30,
	}
}

// Config describes how log records are rendered and where they go.
type Config struct {
	// Level is the initial minimum level; it can be changed later through
	// Logger.SetLevel.
	Level slog.Level
	// AddSource annotates records with the file and line that logged them.
	AddSource bool
	// Format is "text" or "json".
	Format string
	// Writer receives the rendered records, os.Stderr when nil.
	Writer io.Writer
	// Path, when set, additionally writes records to a rotated file.
	Path string
	// MaxSizeMB is the file size that triggers rotation.
	MaxSizeMB int
	// MaxAgeDays is how long rotated files are kept; 0 keeps them forever.
	MaxAgeDays int
	// MaxBackups is how many rotated files are kept; 0 keeps them all.
	MaxBackups int
	// Compress gzips rotated files.
	Compress bool
}

func (c Config) buildHandler(level slog.Leveler) slog.Handler {
	w := c.Writer
	if w == nil {
		w = os.Stderr
	}
	if fw := c.fileWriter(); fw != nil {
		w = io.MultiWriter(w, fw)
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: c.AddSource,
	}
	if c.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func (c Config) fileWriter() io.Writer {
	if c.Path == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   c.Path,
		MaxSize:    c.MaxSizeMB,
		MaxAge:     c.MaxAgeDays,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}
}
