// Package check flags Markdown paragraphs that are hard to read.
package check

import (
	"bytes"
	"fmt"

	"github.com/jethrodaniel/odyssey/internal/config"
	"github.com/jethrodaniel/odyssey/internal/formula"
	"github.com/jethrodaniel/odyssey/internal/lint"
	"github.com/jethrodaniel/odyssey/internal/mdtext"
	"github.com/jethrodaniel/odyssey/internal/stats"
	"github.com/yuin/goldmark/ast"
)

// Rule identity.
const (
	RuleID   = "ODY001"
	RuleName = "paragraph-readability"
)

// Rule checks each paragraph against a readability threshold. Grade
// formulas are compared with MaxGrade; formulas where a higher score is
// easier are compared with MinEase.
type Rule struct {
	Formula  formula.Formula
	MaxGrade float64
	MinEase  float64
	MinWords int
}

// NewRule builds a rule from an effective check configuration. Unset
// thresholds take the package defaults.
func NewRule(cc config.CheckCfg, reg *formula.Registry) (*Rule, error) {
	name := cc.Formula
	if name == "" {
		name = config.DefaultCheck
	}
	f, err := reg.Lookup(name)
	if err != nil {
		return nil, err
	}
	r := &Rule{
		Formula:  f,
		MaxGrade: config.DefaultMaxGrade,
		MinEase:  config.DefaultMinEase,
		MinWords: config.DefaultMinWords,
	}
	if cc.MaxGrade != nil {
		r.MaxGrade = *cc.MaxGrade
	}
	if cc.MinEase != nil {
		r.MinEase = *cc.MinEase
	}
	if cc.MinWords != nil {
		r.MinWords = *cc.MinWords
	}
	return r, nil
}

// Check returns one warning per paragraph that fails the threshold.
func (r *Rule) Check(f *lint.File) []lint.Diagnostic {
	var diags []lint.Diagnostic
	fm := r.Formula
	if fm == nil {
		fm = formula.ARI{}
	}
	ease := formula.HigherIsEasier(fm)

	_ = ast.Walk(f.AST, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		para, ok := n.(*ast.Paragraph)
		if !ok || isTable(para, f) {
			return ast.WalkContinue, nil
		}

		tokens := mdtext.Tokenize(mdtext.ExtractPlainText(para, f.Source))
		if len(tokens.Words) < r.MinWords {
			return ast.WalkContinue, nil
		}
		score := fm.Score(tokens, stats.Aggregate(tokens))

		var msg string
		switch {
		case ease && score < r.MinEase:
			msg = fmt.Sprintf("paragraph reading ease too low (%.1f < %.1f)", score, r.MinEase)
		case !ease && score > r.MaxGrade:
			msg = fmt.Sprintf("paragraph readability grade too high (%.1f > %.1f)", score, r.MaxGrade)
		default:
			return ast.WalkContinue, nil
		}

		diags = append(diags, lint.Diagnostic{
			File:     f.Path,
			Line:     paragraphLine(para, f),
			Column:   1,
			RuleID:   RuleID,
			RuleName: RuleName,
			Severity: lint.Warning,
			Message:  msg,
			Formula:  fm.Name(),
			Score:    score,
		})
		return ast.WalkContinue, nil
	})

	return diags
}

func paragraphLine(para *ast.Paragraph, f *lint.File) int {
	lines := para.Lines()
	if lines.Len() > 0 {
		return f.LineOfOffset(lines.At(0).Start)
	}
	return 1
}

// isTable returns true if the paragraph's first line starts with a pipe.
// goldmark without the table extension parses tables as paragraphs.
func isTable(para *ast.Paragraph, f *lint.File) bool {
	lines := para.Lines()
	if lines.Len() == 0 {
		return false
	}
	seg := lines.At(0)
	return bytes.HasPrefix(bytes.TrimSpace(f.Source[seg.Start:seg.Stop]), []byte("|"))
}
