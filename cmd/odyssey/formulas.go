package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/jethrodaniel/odyssey/internal/formula"
	"github.com/jethrodaniel/odyssey/internal/output"
)

type formulaInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Direction   string `json:"direction"`
	Default     bool   `json:"default"`
}

func listFormulas(reg *formula.Registry) []formulaInfo {
	names := reg.Names()
	infos := make([]formulaInfo, 0, len(names))
	for _, n := range names {
		f, err := reg.Lookup(n)
		if err != nil {
			continue
		}
		dir := "grade"
		if formula.HigherIsEasier(f) {
			dir = "ease"
		}
		infos = append(infos, formulaInfo{
			Name:        n,
			DisplayName: f.Name(),
			Direction:   dir,
			Default:     n == formula.Default,
		})
	}
	return infos
}

// runFormulas implements the "formulas" subcommand.
func (c *cli) runFormulas(args []string) int {
	fs := c.newFlagSet("formulas", "Usage: odyssey formulas [flags]\n\n"+
		"List the available formulas. Grade formulas read higher as harder;\n"+
		"ease formulas read higher as easier.\n")
	var format string
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		return c.errorf("formulas takes no arguments")
	}
	fmtName, err := output.ParseFormat(format)
	if err != nil {
		return c.errorf("%v", err)
	}

	infos := listFormulas(formula.NewRegistry())
	if fmtName == output.JSON {
		if err := encodeJSON(c.stdout, infos); err != nil {
			return c.errorf("writing output: %v", err)
		}
		return 0
	}

	tw := tabwriter.NewWriter(c.stdout, 0, 0, 2, ' ', 0)
	for _, fi := range infos {
		mark := ""
		if fi.Default {
			mark = "(default)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", fi.Name, fi.DisplayName, fi.Direction, mark)
	}
	if err := tw.Flush(); err != nil {
		return c.errorf("writing output: %v", err)
	}
	return 0
}
