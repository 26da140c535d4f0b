package metrics

import (
	"fmt"

	"github.com/jethrodaniel/odyssey/internal/formula"
	"github.com/jethrodaniel/odyssey/internal/lint"
	"github.com/jethrodaniel/odyssey/internal/mdtext"
	"github.com/jethrodaniel/odyssey/internal/stats"
	"github.com/yuin/goldmark/ast"
)

// Document is the shared metric input for a single Markdown file.
// Expensive derived values are computed lazily and cached, so every
// metric of a row shares one parse and one tokenization.
type Document struct {
	Path   string
	Source []byte

	file      *lint.File
	fileReady bool
	fileErr   error

	tokens      mdtext.Tokens
	stats       stats.Stats
	tokensReady bool
	tokensErr   error
}

// NewDocument constructs a Document wrapper for metric computation.
func NewDocument(path string, source []byte) *Document {
	return &Document{
		Path:   path,
		Source: source,
	}
}

// File returns the parsed Markdown file.
func (d *Document) File() (*lint.File, error) {
	if d.fileReady {
		return d.file, d.fileErr
	}

	d.fileReady = true
	f, err := lint.NewFile(d.Path, d.Source)
	if err != nil {
		d.fileErr = fmt.Errorf("parsing markdown: %w", err)
		return nil, d.fileErr
	}
	d.file = f
	return d.file, nil
}

// Tokens returns the tokenized plain text of the document.
func (d *Document) Tokens() (mdtext.Tokens, error) {
	if d.tokensReady {
		return d.tokens, d.tokensErr
	}

	d.tokensReady = true
	f, err := d.File()
	if err != nil {
		d.tokensErr = err
		return mdtext.Tokens{}, err
	}
	d.tokens = mdtext.Tokenize(mdtext.ExtractPlainText(f.AST, f.Source))
	d.stats = stats.Aggregate(d.tokens)
	return d.tokens, nil
}

// Stats returns the aggregated statistics of the document.
func (d *Document) Stats() (stats.Stats, error) {
	if _, err := d.Tokens(); err != nil {
		return stats.Stats{}, err
	}
	return d.stats, nil
}

// Score applies f to the document. Documents without words or
// sentences have no score.
func (d *Document) Score(f formula.Formula) (Value, error) {
	t, err := d.Tokens()
	if err != nil {
		return Missing, err
	}
	if d.stats.Degenerate() {
		return Missing, nil
	}
	return Some(f.Score(t, d.stats)), nil
}

// HeadingCount returns number of heading nodes.
func (d *Document) HeadingCount() (int, error) {
	f, err := d.File()
	if err != nil {
		return 0, err
	}

	count := 0
	_ = ast.Walk(f.AST, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if _, ok := n.(*ast.Heading); ok {
				count++
			}
		}
		return ast.WalkContinue, nil
	})
	return count, nil
}
