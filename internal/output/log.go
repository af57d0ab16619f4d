// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the leveled logging interface passed explicitly through every
// component (detector, renderer, patcher, installer). There is no package
// global: commands construct one and hand it down, so tests can substitute a
// Recorder and assert on emitted warnings.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// LogOptions configures logger construction.
type LogOptions struct {
	// Verbose lowers the level to debug and reports timestamps and callers.
	Verbose bool
}

// NewLogger builds a charmbracelet logger writing to w.
// The returned *log.Logger satisfies Logger.
func NewLogger(w io.Writer, opts LogOptions) *log.Logger {
	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: opts.Verbose,
		ReportCaller:    opts.Verbose,
	})
}

// NewStderrLogger builds the default logger used by commands.
func NewStderrLogger(verbose bool) *log.Logger {
	return NewLogger(os.Stderr, LogOptions{Verbose: verbose})
}
