package main

import (
	"io"

	"github.com/jethrodaniel/odyssey/internal/check"
	"github.com/jethrodaniel/odyssey/internal/config"
	"github.com/jethrodaniel/odyssey/internal/discovery"
	"github.com/jethrodaniel/odyssey/internal/formula"
	"github.com/jethrodaniel/odyssey/internal/lint"
	"github.com/jethrodaniel/odyssey/internal/output"
)

// runCheck implements the "check" subcommand: flag hard paragraphs.
func (c *cli) runCheck(args []string) int {
	fs := c.newFlagSet("check", "Usage: odyssey check [flags] [files...]\n\n"+
		"Flag Markdown paragraphs that are hard to read.\n\n"+
		"Files can be paths, directories (walked recursively for *.md), or glob patterns.\n"+
		"With no file arguments, checks the config's files patterns. A file named - is stdin.\n")
	var (
		configPath string
		format     string
		noColor    bool
		quiet      bool
		verbose    bool
		cc         config.CheckCfg
		maxGrade   float64
		minEase    float64
		minWords   int
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Show config and files on stderr")
	fs.StringVarP(&cc.Formula, "formula", "F", "", "Formula to check with (overrides config)")
	fs.Float64Var(&maxGrade, "max-grade", config.DefaultMaxGrade, "Highest grade allowed for grade formulas")
	fs.Float64Var(&minEase, "min-ease", config.DefaultMinEase, "Lowest score allowed for reading-ease formulas")
	fs.IntVar(&minWords, "min-words", config.DefaultMinWords, "Skip paragraphs with fewer words")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if quiet {
		verbose = false
	}
	fmtName, err := output.ParseFormat(format)
	if err != nil {
		return c.errorf("%v", err)
	}

	reg := formula.NewRegistry()
	cfg, cfgPath, err := loadConfig(configPath, reg)
	if err != nil {
		return c.errorf("%v", err)
	}
	logger := c.logger(verbose)
	if cfgPath != "" {
		logger.Printf("config: %s", cfgPath)
	}

	// Flags given on the command line win over the config and its overrides.
	if fs.Changed("max-grade") {
		cc.MaxGrade = &maxGrade
	}
	if fs.Changed("min-ease") {
		cc.MinEase = &minEase
	}
	if fs.Changed("min-words") {
		cc.MinWords = &minWords
	}
	cfg.Check = cfg.Check.Merge(cc)
	for i := range cfg.Overrides {
		cfg.Overrides[i].Check = cfg.Overrides[i].Check.Merge(cc)
	}
	if err := cfg.Validate(reg); err != nil {
		return c.errorf("%v", err)
	}

	runner := &check.Runner{Config: cfg, Registry: reg, Logger: logger}

	var res *check.Result
	files := fs.Args()
	if len(files) == 1 && files[0] == "-" {
		source, err := io.ReadAll(c.stdin)
		if err != nil {
			return c.errorf("reading stdin: %v", err)
		}
		res = &check.Result{}
		res.Diagnostics, err = runner.CheckSource("<stdin>", source)
		if err != nil {
			res.Errors = append(res.Errors, err)
		}
	} else {
		paths, err := c.resolvePaths(cfg, files)
		if err != nil {
			return c.errorf("%v", err)
		}
		if len(paths) == 0 {
			return 0
		}
		res = runner.Run(paths)
		logger.Printf("checked %d files, %d issues found", len(paths), len(res.Diagnostics))
	}
	c.printErrors(res.Errors)

	if len(res.Errors) > 0 && len(res.Diagnostics) == 0 {
		return 2
	}
	if !quiet && len(res.Diagnostics) > 0 {
		if err := output.NewFormatter(fmtName, !noColor).Format(c.stderr, res.Diagnostics); err != nil {
			return c.errorf("error writing output: %v", err)
		}
	}
	if len(res.Diagnostics) > 0 {
		return 1
	}
	return 0
}

// resolvePaths expands file arguments, or discovers files from the
// config's patterns when there are none.
func (c *cli) resolvePaths(cfg *config.Config, args []string) ([]string, error) {
	if len(args) == 0 {
		return discovery.Discover(discovery.Options{Patterns: cfg.Files, Ignore: cfg.Ignore})
	}
	return lint.ResolveFiles(args, cfg.Ignore)
}
