// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger builds charmbracelet/log loggers with the settings used
// across vsm-dictionary.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a text logger writing to stderr at the given level.
func New(prefix string, level log.Level) *log.Logger {
	return NewWithWriter(os.Stderr, prefix, level)
}

// NewWithWriter returns a text logger writing to w.
func NewWithWriter(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return NewWithWriter(io.Discard, "", log.FatalLevel)
}

// ParseLevel maps a config string onto a level. Unknown or empty values
// give WarnLevel.
func ParseLevel(s string) log.Level {
	if strings.TrimSpace(s) == "" {
		return log.WarnLevel
	}
	level, err := log.ParseLevel(strings.ToLower(s))
	if err != nil {
		return log.WarnLevel
	}
	return level
}
