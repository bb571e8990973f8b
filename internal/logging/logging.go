package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes leveled, color-prefixed output for Movey commands.
// Verbosity is controlled by the --verbose and --debug command flags.
type Logger struct {
	Verbose bool
	Debug   bool
}

func logf(w io.Writer, prefix, msg string, args ...any) {
	fmt.Fprintf(w, prefix+msg+"\n", args...)
}

// Infof logs informational progress. Shown with --verbose or --debug.
func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		logf(os.Stdout, color.GreenString("[info] "), msg, args...)
	}
}

// Debugf logs internal detail. Shown only with --debug.
func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		logf(os.Stdout, color.CyanString("[debug] "), msg, args...)
	}
}

// Warnf logs a warning. Always shown.
func (l Logger) Warnf(msg string, args ...any) {
	logf(os.Stderr, color.YellowString("[warn] "), msg, args...)
}

// Errorf logs an error. Always shown.
func (l Logger) Errorf(msg string, args ...any) {
	logf(os.Stderr, color.RedString("[error] "), msg, args...)
}
