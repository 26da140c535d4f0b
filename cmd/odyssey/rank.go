package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jethrodaniel/odyssey/internal/formula"
	"github.com/jethrodaniel/odyssey/internal/metrics"
	"github.com/jethrodaniel/odyssey/internal/output"
)

type rankOptions struct {
	configPath string
	metricsRaw string
	byRaw      string
	orderRaw   string
	top        int
	format     string
	list       bool
	verbose    bool
}

// runRank implements the "rank" subcommand.
func (c *cli) runRank(args []string) int {
	fs := c.newFlagSet("rank", "Usage: odyssey rank [flags] [files...]\n\n"+
		"Compute readability metrics and rank Markdown files, hardest first.\n"+
		"With no file arguments, ranks the config's files patterns.\n")
	var opts rankOptions
	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&opts.metricsRaw, "metrics", "", "Comma-separated metrics (defaults to registry defaults)")
	fs.StringVar(&opts.byRaw, "by", "", "Metric to sort by")
	fs.StringVar(&opts.orderRaw, "order", "", "Sort order: asc or desc (defaults by metric)")
	fs.IntVar(&opts.top, "top", 0, "Limit results to top N files (0 = all)")
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&opts.list, "list", false, "List available metrics and exit")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Show config and files on stderr")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if opts.top < 0 {
		return c.errorf("--top must be >= 0")
	}
	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return c.errorf("%v", err)
	}

	if opts.list {
		if err := writeMetricsList(c.stdout, format, metrics.All()); err != nil {
			return c.errorf("writing output: %v", err)
		}
		return 0
	}

	defs, byDef, order, err := resolveRankSelection(opts)
	if err != nil {
		return c.errorf("%v", err)
	}

	cfg, cfgPath, err := loadConfig(opts.configPath, formula.NewRegistry())
	if err != nil {
		return c.errorf("%v", err)
	}
	logger := c.logger(opts.verbose)
	if cfgPath != "" {
		logger.Printf("config: %s", cfgPath)
	}

	files, err := c.resolvePaths(cfg, fs.Args())
	if err != nil {
		return c.errorf("%v", err)
	}
	logger.Printf("ranking %d files by %s (%s)", len(files), byDef.Name, order)

	rows, err := metrics.Collect(files, defs)
	if err != nil {
		return c.errorf("%v", err)
	}
	rows = metrics.Rank(rows, byDef, order, opts.top)

	if format == output.JSON {
		err = writeRankJSON(c.stdout, rows, defs)
	} else {
		err = writeRankText(c.stdout, rows, defs)
	}
	if err != nil {
		return c.errorf("writing output: %v", err)
	}
	return 0
}

func resolveRankSelection(opts rankOptions) ([]metrics.Definition, metrics.Definition, metrics.Order, error) {
	selected := formula.SplitList(opts.metricsRaw)
	defs, err := metrics.Resolve(selected)
	if err != nil {
		return nil, metrics.Definition{}, "", err
	}

	byDef := defs[0]
	if strings.TrimSpace(opts.byRaw) != "" {
		byDefs, err := metrics.Resolve([]string{opts.byRaw})
		if err != nil {
			return nil, metrics.Definition{}, "", err
		}
		byDef = byDefs[0]
	}

	// Ensure the sort metric is always computed.
	if !containsMetric(defs, byDef.ID) {
		if len(selected) > 0 {
			return nil, metrics.Definition{}, "", fmt.Errorf(
				"--by metric %q must be included in --metrics", byDef.Name)
		}
		defs = append(defs, byDef)
	}

	order := byDef.DefaultOrder
	if strings.TrimSpace(opts.orderRaw) != "" {
		if order, err = metrics.ParseOrder(opts.orderRaw); err != nil {
			return nil, metrics.Definition{}, "", err
		}
	}
	return defs, byDef, order, nil
}

func containsMetric(defs []metrics.Definition, id string) bool {
	for _, def := range defs {
		if def.ID == id {
			return true
		}
	}
	return false
}

func writeMetricsList(w io.Writer, format output.Format, defs []metrics.Definition) error {
	if format == output.JSON {
		items := make([]map[string]any, 0, len(defs))
		for _, def := range defs {
			items = append(items, map[string]any{
				"id":            def.ID,
				"name":          def.Name,
				"description":   def.Description,
				"default":       def.Default,
				"default_order": def.DefaultOrder,
			})
		}
		return encodeJSON(w, items)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tORDER\tDEFAULT\tDESCRIPTION")
	for _, def := range defs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n",
			def.ID, def.Name, def.DefaultOrder, def.Default, def.Description)
	}
	return tw.Flush()
}

func writeRankText(w io.Writer, rows []metrics.Row, defs []metrics.Definition) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	headers := make([]string, 0, len(defs)+1)
	for _, def := range defs {
		headers = append(headers, strings.ToUpper(def.Name))
	}
	headers = append(headers, "PATH")
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, row := range rows {
		cols := make([]string, 0, len(defs)+1)
		for _, def := range defs {
			cols = append(cols, def.Format(row.Metrics[def.Name]))
		}
		cols = append(cols, row.Path)
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
	}
	return tw.Flush()
}

func writeRankJSON(w io.Writer, rows []metrics.Row, defs []metrics.Definition) error {
	items := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		item := map[string]any{"path": row.Path}
		for _, def := range defs {
			item[def.Name] = def.JSON(row.Metrics[def.Name])
		}
		items = append(items, item)
	}
	return encodeJSON(w, items)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
