// Package metrics computes per-file readability measurements and ranks
// files by them.
package metrics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Order is the direction a ranking sorts in.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseOrder accepts "asc" or "desc" in any case. Empty means desc.
func ParseOrder(raw string) (Order, error) {
	s := strings.TrimSpace(raw)
	switch {
	case s == "" || strings.EqualFold(s, string(OrderDesc)):
		return OrderDesc, nil
	case strings.EqualFold(s, string(OrderAsc)):
		return OrderAsc, nil
	}
	return "", fmt.Errorf("unknown order %q (want asc or desc)", raw)
}

// Value is one measurement. Formula scores have no value for documents
// without words or sentences.
type Value struct {
	Number float64
	OK     bool
}

// Some wraps a computed number.
func Some(n float64) Value { return Value{Number: n, OK: true} }

// Missing is the value of a measurement that does not apply.
var Missing = Value{}

// Definition names a metric. Precision is the number of decimals kept
// when rendering; counts use 0. DefaultOrder puts the hardest-to-read
// files first.
type Definition struct {
	ID           string
	Name         string
	Description  string
	Precision    int
	Default      bool
	DefaultOrder Order
	Compute      func(doc *Document) (Value, error)
}

// Round returns v rounded to the definition's precision, and false when
// v is missing.
func (d Definition) Round(v Value) (float64, bool) {
	if !v.OK {
		return 0, false
	}
	scale := math.Pow10(d.Precision)
	return math.Round(v.Number*scale) / scale, true
}

// Format renders v for a table cell. Missing values print as "-".
func (d Definition) Format(v Value) string {
	n, ok := d.Round(v)
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(n, 'f', d.Precision, 64)
}

// JSON returns the rounded number, or nil when v is missing.
func (d Definition) JSON(v Value) any {
	if n, ok := d.Round(v); ok {
		return n
	}
	return nil
}
