// Package output renders diagnostics and analysis results.
package output

import (
	"fmt"
	"io"

	"github.com/jethrodaniel/odyssey/internal/lint"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	Text Format = "text"
	JSON Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case Text, JSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want text or json)", s)
}

// Formatter defines the interface for outputting diagnostics.
type Formatter interface {
	Format(w io.Writer, diagnostics []lint.Diagnostic) error
}

// NewFormatter returns the diagnostics formatter for f.
func NewFormatter(f Format, color bool) Formatter {
	if f == JSON {
		return &JSONFormatter{}
	}
	return &TextFormatter{Color: color}
}
