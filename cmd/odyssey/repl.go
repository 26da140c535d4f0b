package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/jethrodaniel/odyssey/internal/engine"
	"github.com/jethrodaniel/odyssey/internal/formula"
	"github.com/jethrodaniel/odyssey/internal/output"
)

// repl scores text interactively. The engine keeps the last scored text,
// so switching formulas rescores it without tokenizing again.
type repl struct {
	eng  *engine.Engine
	reg  *formula.Registry
	out  io.Writer
	done bool
}

var replCommands = []prompt.Suggest{
	{Text: "score", Description: "Score text with the active formula"},
	{Text: "formula", Description: "Show or switch the active formula"},
	{Text: "stats", Description: "Print statistics for the last text"},
	{Text: "all", Description: "Score the last text with every formula"},
	{Text: "formulas", Description: "List available formulas"},
	{Text: "help", Description: "Show help"},
	{Text: "quit", Description: "Exit"},
}

func newREPL(name string, reg *formula.Registry, out io.Writer) (*repl, error) {
	eng, err := engine.New(name, engine.WithRegistry(reg))
	if err != nil {
		return nil, err
	}
	return &repl{eng: eng, reg: reg, out: out}, nil
}

// runREPL implements the "repl" subcommand.
func (c *cli) runREPL(args []string) int {
	fs := c.newFlagSet("repl", "Usage: odyssey repl [flags]\n\n"+
		"Score text interactively.\n")
	var configPath, name string
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&name, "formula", "F", "", "Initial formula (defaults to the config formula)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	reg := formula.NewRegistry()
	cfg, _, err := loadConfig(configPath, reg)
	if err != nil {
		return c.errorf("%v", err)
	}
	if name == "" {
		name = cfg.Formula
	}
	r, err := newREPL(name, reg, c.stdout)
	if err != nil {
		return c.errorf("%v", err)
	}

	fmt.Fprintln(c.stdout, "odyssey readability REPL")
	r.printHelp()

	p := prompt.New(
		r.execute,
		r.complete,
		prompt.OptionPrefix("odyssey >> "),
		prompt.OptionTitle("odyssey"),
		prompt.OptionSetExitCheckerOnInput(func(string, bool) bool { return r.done }),
	)
	p.Run()
	return 0
}

func (r *repl) printHelp() {
	fmt.Fprintln(r.out, "Commands:")
	fmt.Fprintln(r.out, "  score <text>     - Score text with the active formula")
	fmt.Fprintln(r.out, "  formula [name]   - Show or switch the active formula")
	fmt.Fprintln(r.out, "  stats            - Print statistics for the last text")
	fmt.Fprintln(r.out, "  all              - Score the last text with every formula")
	fmt.Fprintln(r.out, "  formulas         - List available formulas")
	fmt.Fprintln(r.out, "  help             - Show this help")
	fmt.Fprintln(r.out, "  quit             - Exit")
}

func (r *repl) execute(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}
	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "score":
		r.cmdScore(rest)
	case "formula":
		r.cmdFormula(rest)
	case "stats":
		r.cmdStats()
	case "all":
		r.cmdAll()
	case "formulas":
		for _, n := range r.reg.Names() {
			fmt.Fprintln(r.out, n)
		}
	case "help":
		r.printHelp()
	case "quit", "exit":
		r.done = true
	default:
		fmt.Fprintf(r.out, "Unknown command: %s\n", cmd)
	}
}

func (r *repl) cmdScore(text string) {
	if text == "" {
		fmt.Fprintln(r.out, "Usage: score <text>")
		return
	}
	fmt.Fprintln(r.out, output.FormatScore(r.eng.Score(text, true)))
}

func (r *repl) cmdFormula(name string) {
	if name == "" {
		fmt.Fprintf(r.out, "%s (%s)\n", r.eng.FormulaName(), r.eng.Formula().Name())
		return
	}
	if err := r.eng.UpdateFormula(name); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "formula: %s\n", r.eng.FormulaName())
}

func (r *repl) cmdStats() {
	rep := output.Report{MultiResult: engine.MultiResult{Result: r.eng.Stats(false)}}
	if err := output.WriteReports(r.out, output.Text, []output.Report{rep}); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
	}
}

func (r *repl) cmdAll() {
	active := r.eng.FormulaName()
	rows := make([]output.ScoreRow, 0, len(formula.Builtins))
	for _, n := range formula.Builtins {
		if err := r.eng.UpdateFormula(n); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return
		}
		rows = append(rows, output.ScoreRow{Formula: n, Score: r.eng.Score("", false)})
	}
	if err := r.eng.UpdateFormula(active); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	if err := output.WriteScores(r.out, output.Text, rows); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
	}
}

func (r *repl) complete(d prompt.Document) []prompt.Suggest {
	before := d.TextBeforeCursor()
	word := d.GetWordBeforeCursor()
	if !strings.Contains(before, " ") {
		return prompt.FilterHasPrefix(replCommands, word, true)
	}
	if strings.HasPrefix(before, "formula ") && strings.Count(strings.TrimSpace(before), " ") <= 1 {
		names := r.reg.Names()
		s := make([]prompt.Suggest, 0, len(names))
		for _, n := range names {
			s = append(s, prompt.Suggest{Text: n})
		}
		return prompt.FilterHasPrefix(s, word, true)
	}
	return nil
}
