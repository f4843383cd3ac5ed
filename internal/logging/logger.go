// Package logging builds the exporter's slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// Debug lowers the level from Warn to Debug.
	Debug bool

	// File, when non-empty, sends output to a size-rotated log file.
	File string
}

// Logger pairs a JSON slog.Logger with the level it filters on, so the level
// can be flipped at runtime on config reload.
type Logger struct {
	*slog.Logger
	level  *slog.LevelVar
	closer io.Closer
}

// New returns a Logger writing JSON records to stderr or opts.File.
func New(opts Options) (*Logger, error) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer
	)
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     14, // days
			Compress:   true,
		}
		w, closer = lj, lj
	}

	level := new(slog.LevelVar)
	l := &Logger{
		Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})),
		level:  level,
		closer: closer,
	}
	l.SetDebug(opts.Debug)
	return l, nil
}

// SetDebug switches between Debug and Warn.
func (l *Logger) SetDebug(debug bool) {
	if debug {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelWarn)
}

// Level reports the current level.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
