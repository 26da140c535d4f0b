// Package log provides the verbose logger used by the engine and the CLI.
package log

import (
	"fmt"
	"io"
)

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to the configured writer (typically stderr). A nil
// *Logger is valid and discards everything.
type Logger struct {
	Enabled bool
	W       io.Writer
	// Prefix is written before every message.
	Prefix string
}

// Printf writes a formatted message to W when Enabled is true.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled || l.W == nil {
		return
	}
	_, _ = fmt.Fprintf(l.W, l.Prefix+format+"\n", args...)
}
