package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jethrodaniel/odyssey/internal/lint"
)

const (
	cyan   = "\033[36m"
	yellow = "\033[33m"
	reset  = "\033[0m"
)

// TextFormatter writes one line per diagnostic:
//
//	file:line:col RULEID message
//
// With Color the location is cyan and the rule ID yellow.
type TextFormatter struct {
	Color bool
}

func (f *TextFormatter) Format(w io.Writer, diagnostics []lint.Diagnostic) error {
	bw := bufio.NewWriter(w)
	for _, d := range diagnostics {
		loc := fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)
		fmt.Fprintf(bw, "%s %s %s\n", f.paint(cyan, loc), f.paint(yellow, d.RuleID), d.Message)
	}
	return bw.Flush()
}

func (f *TextFormatter) paint(color, s string) string {
	if !f.Color {
		return s
	}
	return color + s + reset
}
