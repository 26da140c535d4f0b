package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/jethrodaniel/odyssey"
	"github.com/jethrodaniel/odyssey/internal/config"
	"github.com/jethrodaniel/odyssey/internal/formula"
	"github.com/jethrodaniel/odyssey/internal/lint"
	"github.com/jethrodaniel/odyssey/internal/mdtext"
	"github.com/jethrodaniel/odyssey/internal/output"
)

// analyzeOptions are the flags shared by score and stats.
type analyzeOptions struct {
	configPath  string
	formulaName string
	formulasRaw string
	all         bool
	multi       bool
	markdown    bool
	text        string
	format      string
	verbose     bool
}

// input is one text to analyze. name is empty for inline text and stdin.
type input struct {
	name string
	text string
}

func (o *analyzeOptions) register(fs *flag.FlagSet) {
	fs.StringVarP(&o.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&o.formulaName, "formula", "F", "", "Formula to apply (defaults to the config formula)")
	fs.StringVar(&o.formulasRaw, "formulas", "", "Comma-separated formulas to apply")
	fs.BoolVarP(&o.all, "all", "a", false, "Apply every builtin formula")
	fs.BoolVar(&o.markdown, "markdown", false, "Strip Markdown markup before analysis")
	fs.StringVarP(&o.text, "text", "t", "", "Analyze this text instead of files or stdin")
	fs.StringVarP(&o.format, "format", "f", "text", "Output format: text, json")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "Log config and analysis passes on stderr")
}

// formulaNames picks the formulas to apply: --all, then --formulas, then
// --formula, then the config's formulas list for --multi, then the
// config's default formula.
func (o *analyzeOptions) formulaNames(cfg *config.Config, reg *formula.Registry) ([]string, error) {
	switch {
	case o.all:
		return append([]string(nil), formula.Builtins...), nil
	case o.formulasRaw != "":
		return reg.Resolve(formula.SplitList(o.formulasRaw))
	case o.formulaName != "":
		return reg.Resolve([]string{o.formulaName})
	case o.multi:
		return reg.Resolve(cfg.Formulas)
	default:
		return reg.Resolve([]string{cfg.Formula})
	}
}

// readInputs gathers the texts to analyze: --text, else each file
// argument ("-" is stdin), else stdin.
func (c *cli) readInputs(o analyzeOptions, files []string) ([]input, error) {
	var inputs []input
	switch {
	case o.text != "":
		if len(files) > 0 {
			return nil, fmt.Errorf("--text cannot be combined with file arguments")
		}
		inputs = append(inputs, input{text: o.text})
	case len(files) == 0:
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		inputs = append(inputs, input{text: string(data)})
	default:
		for _, f := range files {
			var (
				data []byte
				err  error
			)
			if f == "-" {
				data, err = io.ReadAll(c.stdin)
			} else {
				data, err = os.ReadFile(f)
			}
			if err != nil {
				return nil, fmt.Errorf("reading %q: %w", f, err)
			}
			inputs = append(inputs, input{name: f, text: string(data)})
		}
	}

	if o.markdown {
		for i, in := range inputs {
			f, err := lint.NewFile(in.name, []byte(in.text))
			if err != nil {
				return nil, fmt.Errorf("parsing %q: %w", in.name, err)
			}
			inputs[i].text = mdtext.ExtractPlainText(f.AST, f.Source)
		}
	}
	return inputs, nil
}

// analysis is everything score and stats share once flags are parsed.
type analysis struct {
	inputs []input
	names  []string
	format output.Format
	opts   []odyssey.Option
}

// prepare parses flags and loads the config, formulas and inputs. A
// non-zero code means the command should exit with it.
func (c *cli) prepare(fs *flag.FlagSet, o *analyzeOptions, args []string) (analysis, int) {
	var a analysis
	if err := fs.Parse(args); err != nil {
		return a, 2
	}

	format, err := output.ParseFormat(o.format)
	if err != nil {
		return a, c.errorf("%v", err)
	}
	a.format = format

	reg := formula.NewRegistry()
	cfg, cfgPath, err := loadConfig(o.configPath, reg)
	if err != nil {
		return a, c.errorf("%v", err)
	}
	logger := c.logger(o.verbose)
	if cfgPath != "" {
		logger.Printf("config: %s", cfgPath)
	}

	if a.names, err = o.formulaNames(cfg, reg); err != nil {
		return a, c.errorf("%v", err)
	}
	if a.inputs, err = c.readInputs(*o, fs.Args()); err != nil {
		return a, c.errorf("%v", err)
	}

	a.opts = []odyssey.Option{odyssey.WithRegistry(reg), odyssey.WithLogger(logger)}
	return a, 0
}

// runScore implements the "score" subcommand.
func (c *cli) runScore(args []string) int {
	var o analyzeOptions
	fs := c.newFlagSet("score", "Usage: odyssey score [flags] [files...]\n\n"+
		"Score text with one or more readability formulas.\n"+
		"With no file arguments, reads from stdin. A file named - is stdin.\n")
	o.register(fs)

	a, code := c.prepare(fs, &o, args)
	if code != 0 {
		return code
	}

	var rows []output.ScoreRow
	for _, in := range a.inputs {
		scores, err := odyssey.AnalyzeMulti(in.text, a.names, a.opts...)
		if err != nil {
			return c.errorf("%v", err)
		}
		for _, n := range a.names {
			rows = append(rows, output.ScoreRow{File: in.name, Formula: n, Score: scores[n]})
		}
	}

	if a.format == output.Text && len(rows) == 1 && rows[0].File == "" {
		fmt.Fprintln(c.stdout, output.FormatScore(rows[0].Score))
		return 0
	}
	if err := output.WriteScores(c.stdout, a.format, rows); err != nil {
		return c.errorf("writing output: %v", err)
	}
	return 0
}

// runStats implements the "stats" subcommand.
func (c *cli) runStats(args []string) int {
	var o analyzeOptions
	fs := c.newFlagSet("stats", "Usage: odyssey stats [flags] [files...]\n\n"+
		"Print text statistics, the score and the per-sentence breakdown.\n"+
		"With several formulas the statistics are those of the last one.\n"+
		"With no file arguments, reads from stdin. A file named - is stdin.\n")
	o.register(fs)
	fs.BoolVarP(&o.multi, "multi", "m", false, "Apply the config's formulas list")

	a, code := c.prepare(fs, &o, args)
	if code != 0 {
		return code
	}

	reports := make([]output.Report, 0, len(a.inputs))
	for _, in := range a.inputs {
		res, err := odyssey.AnalyzeMultiStats(in.text, a.names, a.opts...)
		if err != nil {
			return c.errorf("%v", err)
		}
		reports = append(reports, output.Report{File: in.name, MultiResult: res})
	}

	if err := output.WriteReports(c.stdout, a.format, reports); err != nil {
		return c.errorf("writing output: %v", err)
	}
	return 0
}
