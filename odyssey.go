// Package odyssey computes readability scores for English text.
//
// A text is tokenized once into sentences, words and syllables, the
// counts are aggregated into Statistics, and one or more formulas turn
// the statistics into scores:
//
//	score, _ := odyssey.Analyze("Shall I compare thee to a summer's day?", "")
//	// 93.0 (Flesch-Kincaid Reading Ease)
//
//	res, _ := odyssey.AnalyzeAll(text)
//	// res.Scores["Ari"], res.Scores["Smog"], ...
//
// Texts without words or sentences score 0 with every builtin formula.
package odyssey

import (
	"fmt"

	"github.com/jethrodaniel/odyssey/internal/engine"
	"github.com/jethrodaniel/odyssey/internal/formula"
	vlog "github.com/jethrodaniel/odyssey/internal/log"
	"github.com/jethrodaniel/odyssey/internal/mdtext"
	"github.com/jethrodaniel/odyssey/internal/stats"
)

// DefaultFormula is used when no formula name is given.
const DefaultFormula = formula.Default

type (
	// Formula turns text statistics into a score.
	Formula = formula.Formula
	// SentenceScore pairs a sentence with its score.
	SentenceScore = formula.SentenceScore
	// Registry resolves formula names.
	Registry = formula.Registry
	// Factory constructs a formula for a Registry.
	Factory = formula.Factory
	// Tokens is a tokenized text.
	Tokens = mdtext.Tokens
	// Statistics are the counts and averages derived from Tokens.
	Statistics = stats.Stats
	// Result is Statistics plus one formula's score and breakdown.
	Result = engine.Result
	// MultiResult is a Result plus the scores of several formulas.
	MultiResult = engine.MultiResult
	// Logger reports analysis passes when enabled.
	Logger = vlog.Logger
)

var (
	// ErrUnknownFormula is returned for unregistered formula names.
	ErrUnknownFormula = formula.ErrUnknownFormula
	// ErrArgument is returned for malformed arguments.
	ErrArgument = formula.ErrArgument
)

// Option configures an analysis.
type Option = engine.Option

// WithRegistry resolves names through r, allowing custom formulas.
func WithRegistry(r *Registry) Option { return engine.WithRegistry(r) }

// WithLogger reports analysis passes to l.
func WithLogger(l *Logger) Option { return engine.WithLogger(l) }

// NewRegistry returns a registry holding the builtin formulas.
func NewRegistry() *Registry { return formula.NewRegistry() }

// Formulas returns the names of the builtin formulas.
func Formulas() []string {
	return append([]string(nil), formula.Builtins...)
}

// FormulaFor resolves a formula by name. Names are matched ignoring case
// and the separators '_', '-' and ' '.
func FormulaFor(name string, opts ...Option) (Formula, error) {
	e, err := engine.New(orDefault(name), opts...)
	if err != nil {
		return nil, err
	}
	return e.Formula(), nil
}

// Analyze scores text with the named formula, or DefaultFormula when
// name is empty.
func Analyze(text, name string, opts ...Option) (float64, error) {
	e, err := engine.New(orDefault(name), opts...)
	if err != nil {
		return 0, err
	}
	return e.Score(text, true), nil
}

// AnalyzeStats is Analyze returning the full statistics.
func AnalyzeStats(text, name string, opts ...Option) (Result, error) {
	e, err := engine.New(orDefault(name), opts...)
	if err != nil {
		return Result{}, err
	}
	e.Score(text, true)
	return e.Stats(false), nil
}

// AnalyzeMulti scores text with each named formula, tokenizing it once.
// Scores are keyed by the names as given.
func AnalyzeMulti(text string, names []string, opts ...Option) (map[string]float64, error) {
	_, scores, err := analyzeMulti(text, names, opts)
	return scores, err
}

// AnalyzeMultiStats is AnalyzeMulti returning the statistics of the last
// formula alongside the scores.
func AnalyzeMultiStats(text string, names []string, opts ...Option) (MultiResult, error) {
	e, scores, err := analyzeMulti(text, names, opts)
	if err != nil {
		return MultiResult{}, err
	}
	return MultiResult{Result: e.Stats(false), Scores: scores}, nil
}

// AnalyzeAll runs every builtin formula over text.
func AnalyzeAll(text string, opts ...Option) (MultiResult, error) {
	return AnalyzeMultiStats(text, formula.Builtins, opts...)
}

// Readability returns every builtin score and the statistics for text.
func Readability(text string) (MultiResult, error) {
	return AnalyzeAll(text)
}

func analyzeMulti(text string, names []string, opts []Option) (*engine.Engine, map[string]float64, error) {
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("%w: you must supply at least one formula", ErrArgument)
	}

	e, err := engine.New(names[0], opts...)
	if err != nil {
		return nil, nil, err
	}
	scores := make(map[string]float64, len(names))
	scores[names[0]] = e.Score(text, true)

	for _, name := range names[1:] {
		if err := e.UpdateFormula(name); err != nil {
			return nil, nil, err
		}
		scores[name] = e.Score("", false)
	}
	return e, scores, nil
}

func orDefault(name string) string {
	if name == "" {
		return DefaultFormula
	}
	return name
}
