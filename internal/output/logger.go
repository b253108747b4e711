// Package output renders installer status lines to a terminal or buffer.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	successPrefix = "✓ "
	infoPrefix    = "ℹ "
	warningPrefix = "⚠ "
	errorPrefix   = "✗ "
)

// Logger prints prefixed, colored status lines. Write errors are discarded:
// failing to display a status line must not abort an install.
type Logger struct {
	out     io.Writer
	success *color.Color
	info    *color.Color
	warning *color.Color
	err     *color.Color
	header  *color.Color
}

// New returns a Logger writing to out. Colors follow fatih/color's global
// NoColor detection, so non-terminal writers receive plain text.
func New(out io.Writer) *Logger {
	if out == nil {
		out = io.Discard
	}
	return &Logger{
		out:     out,
		success: color.New(color.FgGreen),
		info:    color.New(color.FgBlue),
		warning: color.New(color.FgYellow),
		err:     color.New(color.FgRed),
		header:  color.New(color.Bold),
	}
}

// Success prints a success line.
func (l *Logger) Success(msg string) {
	_, _ = l.success.Fprintln(l.out, successPrefix+msg)
}

// Info prints an informational line.
func (l *Logger) Info(msg string) {
	_, _ = l.info.Fprintln(l.out, infoPrefix+msg)
}

// Warning prints a warning line.
func (l *Logger) Warning(msg string) {
	_, _ = l.warning.Fprintln(l.out, warningPrefix+msg)
}

// Error prints an error line.
func (l *Logger) Error(msg string) {
	_, _ = l.err.Fprintln(l.out, errorPrefix+msg)
}

// Header prints a blank line followed by a bold section title.
func (l *Logger) Header(msg string) {
	_, _ = fmt.Fprintln(l.out)
	_, _ = l.header.Fprintln(l.out, msg)
}

// Line prints msg without decoration.
func (l *Logger) Line(msg string) {
	_, _ = fmt.Fprintln(l.out, msg)
}

// Blank prints an empty line.
func (l *Logger) Blank() {
	_, _ = fmt.Fprintln(l.out)
}
