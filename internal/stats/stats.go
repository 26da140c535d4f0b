// Package stats aggregates tokenized text into the counts and averages
// that readability formulas consume.
package stats

import (
	"github.com/jethrodaniel/odyssey/internal/mdtext"
)

// Stats holds the derived statistics for one text. Averages are zero
// when their divisor is zero.
type Stats struct {
	StringLength            int     `json:"string_length" yaml:"string_length"`
	LetterCount             int     `json:"letter_count" yaml:"letter_count"`
	SyllableCount           int     `json:"syllable_count" yaml:"syllable_count"`
	WordCount               int     `json:"word_count" yaml:"word_count"`
	SentenceCount           int     `json:"sentence_count" yaml:"sentence_count"`
	AverageWordsPerSentence float64 `json:"average_words_per_sentence" yaml:"average_words_per_sentence"`
	AverageSyllablesPerWord float64 `json:"average_syllables_per_word" yaml:"average_syllables_per_word"`
}

// Aggregate computes Stats from tokens.
func Aggregate(t mdtext.Tokens) Stats {
	s := Stats{
		StringLength:  mdtext.CountCharacters(t.Raw),
		LetterCount:   mdtext.CountLetters(t.Raw),
		WordCount:     len(t.Words),
		SentenceCount: len(t.Sentences),
	}
	for _, n := range t.Syllables {
		s.SyllableCount += n
	}
	s.AverageWordsPerSentence = ratio(s.WordCount, s.SentenceCount)
	s.AverageSyllablesPerWord = ratio(s.SyllableCount, s.WordCount)
	return s
}

// ForSentence tokenizes a single sentence and aggregates it in
// isolation, using the same algorithms as the full text.
func ForSentence(sentence string) (mdtext.Tokens, Stats) {
	t := mdtext.Tokenize(sentence)
	return t, Aggregate(t)
}

// Degenerate reports whether s has no words or no sentences.
func (s Stats) Degenerate() bool {
	return s.WordCount == 0 || s.SentenceCount == 0
}

// Map returns the statistics keyed by their snake_case names.
func (s Stats) Map() map[string]any {
	return map[string]any{
		"string_length":              s.StringLength,
		"letter_count":               s.LetterCount,
		"syllable_count":             s.SyllableCount,
		"word_count":                 s.WordCount,
		"sentence_count":             s.SentenceCount,
		"average_words_per_sentence": s.AverageWordsPerSentence,
		"average_syllables_per_word": s.AverageSyllablesPerWord,
	}
}

// Fields lists the keys of Map in declaration order.
func Fields() []string {
	return []string{
		"string_length",
		"letter_count",
		"syllable_count",
		"word_count",
		"sentence_count",
		"average_words_per_sentence",
		"average_syllables_per_word",
	}
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
