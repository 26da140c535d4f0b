package engine

import (
	"github.com/jethrodaniel/odyssey/internal/formula"
	"github.com/jethrodaniel/odyssey/internal/stats"
)

// Result is the full statistics view of one formula over one text.
type Result struct {
	stats.Stats
	Name            string                  `json:"name"`
	Formula         formula.Formula         `json:"-"`
	Score           float64                 `json:"score"`
	ScoreBySentence []formula.SentenceScore `json:"score_by_sentence"`
}

// Map returns the statistics and formula fields keyed by snake_case
// names.
func (r Result) Map() map[string]any {
	m := r.Stats.Map()
	m["name"] = r.Name
	m["formula"] = r.Formula
	m["score"] = r.Score
	m["score_by_sentence"] = r.ScoreBySentence
	return m
}

// MultiResult is the statistics of the last formula applied plus the
// score of every requested formula.
type MultiResult struct {
	Result
	Scores map[string]float64 `json:"scores"`
}

// Map is Result.Map with a "scores" entry.
func (m MultiResult) Map() map[string]any {
	out := m.Result.Map()
	out["scores"] = m.Scores
	return out
}
