package log

import (
	"fmt"
	"io"
	"os"
)

// StderrLogger prints one marked line per event for humans running shopctl.
// A nil Stderr writes to os.Stderr.
type StderrLogger struct {
	Stderr io.Writer
}

const (
	markAction  = "►"
	markSuccess = "✔"
	markWarning = "⚠️"
	markFailure = "✗"
)

func (l StderrLogger) printf(mark, format string, a ...interface{}) {
	out := l.Stderr
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintln(out, mark, fmt.Sprintf(format, a...))
}

func (l StderrLogger) Actionf(format string, a ...interface{}) {
	l.printf(markAction, format, a...)
}

func (l StderrLogger) Successf(format string, a ...interface{}) {
	l.printf(markSuccess, format, a...)
}

func (l StderrLogger) Warningf(format string, a ...interface{}) {
	l.printf(markWarning, format, a...)
}

func (l StderrLogger) Failuref(format string, a ...interface{}) {
	l.printf(markFailure, format, a...)
}
