// Package formula defines the readability formulas and the registry that
// resolves them by name.
package formula

import (
	"math"

	"github.com/jethrodaniel/odyssey/internal/mdtext"
	"github.com/jethrodaniel/odyssey/internal/stats"
)

// Formula turns text statistics into a readability score.
type Formula interface {
	// Name is the human-readable formula name.
	Name() string
	// Score returns the score for the whole text, rounded to one
	// decimal place.
	Score(t mdtext.Tokens, s stats.Stats) float64
	// ScoreBySentence scores each sentence of t in isolation, in order.
	ScoreBySentence(t mdtext.Tokens, s stats.Stats) []SentenceScore
}

// SentenceScore pairs a sentence with its score.
type SentenceScore struct {
	Score    float64 `json:"score"`
	Sentence string  `json:"sentence"`
}

// Ease is implemented by formulas where a higher score means easier
// text. Grade-level formulas do not implement it.
type Ease interface {
	HigherIsEasier() bool
}

// HigherIsEasier reports whether a higher score from f means easier text.
func HigherIsEasier(f Formula) bool {
	e, ok := f.(Ease)
	return ok && e.HigherIsEasier()
}

// scoreFunc computes an unrounded score. It is only called with
// non-degenerate statistics.
type scoreFunc func(t mdtext.Tokens, s stats.Stats) float64

// evaluate applies fn and rounds the result. Degenerate statistics
// score 0.
func evaluate(fn scoreFunc, t mdtext.Tokens, s stats.Stats) float64 {
	if s.Degenerate() {
		return 0
	}
	return Round(fn(t, s))
}

// bySentence applies fn to each sentence of t in isolation.
func bySentence(fn scoreFunc, t mdtext.Tokens) []SentenceScore {
	out := make([]SentenceScore, 0, len(t.Sentences))
	for _, sentence := range t.Sentences {
		st, ss := stats.ForSentence(sentence)
		out = append(out, SentenceScore{
			Score:    evaluate(fn, st, ss),
			Sentence: sentence,
		})
	}
	return out
}

// Round rounds n to one decimal place, halves away from zero.
func Round(n float64) float64 {
	return math.Round(n*10) / 10
}
