// Package logger gives every component a named logger. All of them write
// through one handler on stderr whose level is switched with SetDebug.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cenkalti/log"
)

var handler = newHandler()

func newHandler() log.Handler {
	h := log.NewFileHandler(os.Stderr)
	h.SetFormatter(formatter{})
	h.SetLevel(log.INFO)
	return h
}

// SetDebug lets debug messages through, or filters them out again.
func SetDebug(enabled bool) {
	level := log.INFO
	if enabled {
		level = log.DEBUG
	}
	handler.SetLevel(level)
}

// Logger writes leveled messages prefixed with its name.
type Logger log.Logger

// New returns a Logger named name. Filtering happens in the shared handler
// only.
func New(name string) Logger {
	l := log.NewLogger(name)
	l.SetLevel(log.DEBUG)
	l.SetHandler(handler)
	return l
}

type formatter struct{}

// Format renders "18:15:57.000 INFO     rangebench: loaded config (main.go:42)".
func (formatter) Format(rec *log.Record) string {
	return fmt.Sprintf("%s %-8s %s: %s (%s:%d)",
		rec.Time.Format("15:04:05.000"),
		rec.Level,
		rec.LoggerName,
		rec.Message,
		filepath.Base(rec.Filename),
		rec.Line)
}
