package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"

	"github.com/jethrodaniel/odyssey/internal/config"
	"github.com/jethrodaniel/odyssey/internal/formula"
	vlog "github.com/jethrodaniel/odyssey/internal/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

const usageText = `Usage: odyssey <command> [flags] [files...]

Commands:
  score      Score text with one or more readability formulas
  stats      Print text statistics and per-sentence scores
  check      Flag hard-to-read paragraphs in Markdown files
  rank       Rank Markdown files by readability metrics
  formulas   List available formulas
  repl       Score text interactively
  init       Generate a default .odyssey.yml config file
  version    Print version and exit

Global flags:
  -h, --help      Show this help

Run 'odyssey <command> --help' for more information on a command.
`

// cli carries the process streams so commands can be driven from tests.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}

	if len(args) == 0 {
		fmt.Fprint(stderr, usageText)
		return 0
	}

	switch args[0] {
	case "--help", "-h":
		fmt.Fprint(stderr, usageText)
		return 0
	case "score":
		return c.runScore(args[1:])
	case "stats":
		return c.runStats(args[1:])
	case "check":
		return c.runCheck(args[1:])
	case "rank":
		return c.runRank(args[1:])
	case "formulas":
		return c.runFormulas(args[1:])
	case "repl":
		return c.runREPL(args[1:])
	case "init":
		return c.runInit(args[1:])
	case "version":
		c.printVersion()
		return 0
	default:
		fmt.Fprintf(stderr, "odyssey: unknown command %q\n\n%s", args[0], usageText)
		return 2
	}
}

// errorf reports a failure on stderr and returns exit code 2.
func (c *cli) errorf(format string, args ...any) int {
	fmt.Fprintf(c.stderr, "odyssey: "+format+"\n", args...)
	return 2
}

func (c *cli) printErrors(errs []error) {
	for _, e := range errs {
		fmt.Fprintf(c.stderr, "odyssey: %v\n", e)
	}
}

func (c *cli) logger(verbose bool) *vlog.Logger {
	return &vlog.Logger{Enabled: verbose, W: c.stderr}
}

func (c *cli) newFlagSet(name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() {
		fmt.Fprint(c.stderr, usage+"\nFlags:\n")
		fs.PrintDefaults()
	}
	return fs
}

func (c *cli) printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Fprintf(c.stdout, "odyssey %s\n", version)
}

// runInit implements the "init" subcommand: generate .odyssey.yml.
func (c *cli) runInit(args []string) int {
	fs := c.newFlagSet("init", "Usage: odyssey init\n\n"+
		"Generate a default .odyssey.yml config file in the current directory.\n")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		return c.errorf("init takes no arguments")
	}

	if _, err := os.Stat(config.FileName); err == nil {
		return c.errorf("%s already exists", config.FileName)
	}

	data, err := config.Marshal(config.Defaults())
	if err != nil {
		return c.errorf("%v", err)
	}
	if err := os.WriteFile(config.FileName, data, 0o644); err != nil {
		return c.errorf("writing %s: %v", config.FileName, err)
	}

	fmt.Fprintf(c.stderr, "odyssey: created %s\n", config.FileName)
	return 0
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory. It returns the
// merged and validated config and the path that was loaded (empty if
// defaults only).
func loadConfig(configPath string, reg *formula.Registry) (*config.Config, string, error) {
	defaults := config.Defaults()

	path := configPath
	if path == "" {
		if cwd, err := os.Getwd(); err == nil {
			path, _ = config.Discover(cwd)
		}
	}

	var loaded *config.Config
	if path != "" {
		var err error
		if loaded, err = config.Load(path); err != nil {
			return nil, "", err
		}
	}

	cfg := config.Merge(defaults, loaded)
	if err := cfg.Validate(reg); err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return cfg, path, nil
}
