// Package engine tokenizes text once and scores it with a swappable
// formula.
package engine

import (
	"github.com/jethrodaniel/odyssey/internal/formula"
	vlog "github.com/jethrodaniel/odyssey/internal/log"
	"github.com/jethrodaniel/odyssey/internal/mdtext"
	"github.com/jethrodaniel/odyssey/internal/stats"
)

// Engine holds the tokens and statistics of the last analyzed text and
// the active formula. Swapping the formula keeps the cached analysis.
// An Engine must not be shared between goroutines.
type Engine struct {
	registry *formula.Registry
	logger   *vlog.Logger

	name    string
	formula formula.Formula

	tokens   mdtext.Tokens
	stats    stats.Stats
	analyzed bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry resolves formula names through r instead of the builtin
// registry.
func WithRegistry(r *formula.Registry) Option {
	return func(e *Engine) { e.registry = r }
}

// WithLogger reports analysis passes and formula swaps to l.
func WithLogger(l *vlog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New returns an engine using the named formula. It fails with
// formula.ErrUnknownFormula when the name is not registered.
func New(name string, opts ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = formula.NewRegistry()
	}
	if err := e.UpdateFormula(name); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateFormula swaps the active formula without discarding the cached
// analysis.
func (e *Engine) UpdateFormula(name string) error {
	f, err := e.registry.Lookup(name)
	if err != nil {
		return err
	}
	canonical, _ := e.registry.Canonical(name)
	e.name = canonical
	e.formula = f
	e.logger.Printf("formula: %s (%s)", canonical, f.Name())
	return nil
}

// Analyze tokenizes and aggregates text, replacing the cached analysis.
func (e *Engine) Analyze(text string) {
	e.tokens = mdtext.Tokenize(text)
	e.stats = stats.Aggregate(e.tokens)
	e.analyzed = true
	e.logger.Printf(
		"analyzed: %d sentences, %d words, %d syllables",
		e.stats.SentenceCount, e.stats.WordCount, e.stats.SyllableCount,
	)
}

// Score returns the active formula's score. With recompute, or when
// nothing has been analyzed yet, text is analyzed first; otherwise text
// is ignored and the cached analysis is reused.
func (e *Engine) Score(text string, recompute bool) float64 {
	if recompute || !e.analyzed {
		e.Analyze(text)
	} else {
		e.logger.Printf("reusing cached analysis")
	}
	return e.formula.Score(e.tokens, e.stats)
}

// Stats returns the statistics merged with the active formula's name,
// score and per-sentence breakdown. With recompute the cached text is
// analyzed again.
func (e *Engine) Stats(recompute bool) Result {
	if recompute || !e.analyzed {
		e.Analyze(e.tokens.Raw)
	}
	return Result{
		Stats:           e.stats,
		Name:            e.formula.Name(),
		Formula:         e.formula,
		Score:           e.formula.Score(e.tokens, e.stats),
		ScoreBySentence: e.formula.ScoreBySentence(e.tokens, e.stats),
	}
}

// FormulaName returns the registered name of the active formula.
func (e *Engine) FormulaName() string { return e.name }

// Formula returns the active formula.
func (e *Engine) Formula() formula.Formula { return e.formula }

// Tokens returns the cached tokens.
func (e *Engine) Tokens() mdtext.Tokens { return e.tokens }

// Statistics returns the cached statistics.
func (e *Engine) Statistics() stats.Stats { return e.stats }
