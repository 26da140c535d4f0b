package check

import (
	"fmt"
	"os"

	"github.com/jethrodaniel/odyssey/internal/config"
	"github.com/jethrodaniel/odyssey/internal/formula"
	"github.com/jethrodaniel/odyssey/internal/lint"
	vlog "github.com/jethrodaniel/odyssey/internal/log"
)

// Runner drives the check pipeline: for each file it reads the content,
// parses it once, resolves the effective check configuration and collects
// diagnostics.
type Runner struct {
	Config   *config.Config
	Registry *formula.Registry
	Logger   *vlog.Logger
}

// Result holds the output of a check run.
type Result struct {
	Diagnostics []lint.Diagnostic
	Errors      []error
}

// Run checks the files at the given paths and returns all diagnostics
// sorted by file, line and column, plus any per-file errors.
func (r *Runner) Run(paths []string) *Result {
	res := &Result{}

	for _, path := range paths {
		if config.MatchesAny(r.Config.Ignore, path) {
			r.Logger.Printf("ignored: %s", path)
			continue
		}

		source, err := os.ReadFile(path)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("reading %q: %w", path, err))
			continue
		}

		diags, err := r.CheckSource(path, source)
		if err != nil {
			res.Errors = append(res.Errors, err)
			continue
		}
		res.Diagnostics = append(res.Diagnostics, diags...)
	}

	lint.SortDiagnostics(res.Diagnostics)
	return res
}

// CheckSource checks one document held in memory. path selects overrides
// and is reported in diagnostics.
func (r *Runner) CheckSource(path string, source []byte) ([]lint.Diagnostic, error) {
	f, err := lint.NewFile(path, source)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}

	reg := r.Registry
	if reg == nil {
		reg = formula.NewRegistry()
	}
	rl, err := NewRule(config.Effective(r.Config, path), reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.Logger.Printf("checking %s with %s", path, rl.Formula.Name())

	return rl.Check(f), nil
}
