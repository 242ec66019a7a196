// Package logger provides logging functionality for the new application.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted informational message.
	Logf(format string, args ...interface{})

	// Debugf logs a formatted message only shown in verbose mode.
	Debugf(format string, args ...interface{})

	// Errorf logs a formatted error message.
	Errorf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Debugf does nothing for noop logger.
func (n *noopLogger) Debugf(_ string, _ ...interface{}) {}

// Errorf does nothing for noop logger.
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger backed by zerolog.
type defaultLogger struct {
	mu  sync.Mutex
	log zerolog.Logger
}

// NewDefaultLogger creates a logger writing human readable lines to stderr.
// Colors are only enabled when stderr is a terminal.
func NewDefaultLogger(verbose bool) Logger {
	fd := os.Stderr.Fd()
	noColor := !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)

	return NewLogger(os.Stderr, verbose, noColor)
}

// NewLogger creates a logger writing to w.
func NewLogger(w io.Writer, verbose, noColor bool) Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}

	return &defaultLogger{
		log: zerolog.New(output).Level(level).With().Timestamp().Logger(),
	}
}

// Logf writes a formatted info message.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.write(d.log.Info(), format, args...)
}

// Debugf writes a formatted debug message.
func (d *defaultLogger) Debugf(format string, args ...interface{}) {
	d.write(d.log.Debug(), format, args...)
}

// Errorf writes a formatted error message.
func (d *defaultLogger) Errorf(format string, args ...interface{}) {
	d.write(d.log.Error(), format, args...)
}

func (d *defaultLogger) write(event *zerolog.Event, format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	event.Msg(fmt.Sprintf(format, args...))
}
