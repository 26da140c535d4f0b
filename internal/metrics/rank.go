package metrics

import (
	"cmp"
	"fmt"
	"math"
	"os"
	"slices"
	"strings"
)

// Row is one file's measurements keyed by metric name.
type Row struct {
	Path    string
	Metrics map[string]Value
}

// Collect reads each path and measures it with defs.
func Collect(paths []string, defs []Definition) ([]Row, error) {
	rows := make([]Row, 0, len(paths))
	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		row, err := CollectDocument(NewDocument(path, source), defs)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CollectDocument measures one document with defs. The document's
// tokens and statistics are computed once and shared by every metric.
func CollectDocument(doc *Document, defs []Definition) (Row, error) {
	row := Row{Path: doc.Path, Metrics: make(map[string]Value, len(defs))}
	for _, def := range defs {
		v, err := def.Compute(doc)
		if err != nil {
			return Row{}, fmt.Errorf("%s: computing %s: %w", doc.Path, def.Name, err)
		}
		row.Metrics[def.Name] = v
	}
	return row, nil
}

// Rank sorts rows by the metric by in the given order and keeps the
// first top rows (all when top <= 0). Missing values sort last and ties
// fall back to the path.
func Rank(rows []Row, by Definition, order Order, top int) []Row {
	slices.SortStableFunc(rows, func(a, b Row) int {
		x, y := a.Metrics[by.Name], b.Metrics[by.Name]
		if x.OK != y.OK {
			if x.OK {
				return -1
			}
			return 1
		}
		if x.OK && math.Abs(x.Number-y.Number) > 1e-9 {
			c := cmp.Compare(x.Number, y.Number)
			if order == OrderDesc {
				c = -c
			}
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
	if top > 0 && top < len(rows) {
		rows = rows[:top]
	}
	return rows
}
