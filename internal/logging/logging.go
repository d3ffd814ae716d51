// Package logging builds the application logger. Every user-facing message is
// duplicated into an append-only log file beside the executable.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log file permissions
const (
	DefaultFileMode = 0644
)

// New returns a logger writing human-readable lines to stdout and appending
// the same events to the file at path. The returned closer releases the file
// handle. When the file cannot be opened the logger degrades to console-only
// and the error is returned for the caller to report.
func New(path string) (zerolog.Logger, io.Closer, error) {
	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, DefaultFileMode)
	if err != nil {
		logger := zerolog.New(console).With().Timestamp().Logger()
		return logger, nopCloser{}, err
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(console, file)).With().Timestamp().Logger()
	return logger, file, nil
}

// Nop returns a discarding logger for tests and for components constructed
// without a configured log destination.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
