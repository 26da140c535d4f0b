package stats

import (
	"math"
	"testing"

	"github.com/jethrodaniel/odyssey/internal/mdtext"
)

func TestAggregate_Horse(t *testing.T) {
	s := Aggregate(mdtext.Tokenize("A horse, a horse, my kingdom for a horse!"))

	want := Stats{
		StringLength:            41,
		LetterCount:             30,
		SyllableCount:           10,
		WordCount:               9,
		SentenceCount:           1,
		AverageWordsPerSentence: 9.0,
		AverageSyllablesPerWord: 10.0 / 9.0,
	}
	if s != want {
		t.Fatalf("got %+v, want %+v", s, want)
	}
}

func TestAggregate_EmptyIsZero(t *testing.T) {
	for _, text := range []string{"", "   ", "?!...", "-- --"} {
		s := Aggregate(mdtext.Tokenize(text))
		if s.WordCount != 0 || s.SentenceCount != 0 {
			t.Errorf("%q: got words=%d sentences=%d, want 0", text, s.WordCount, s.SentenceCount)
		}
		if s.AverageWordsPerSentence != 0 || s.AverageSyllablesPerWord != 0 {
			t.Errorf("%q: averages should be 0, got %+v", text, s)
		}
		if !s.Degenerate() {
			t.Errorf("%q: expected degenerate stats", text)
		}
	}
}

func TestAggregate_CountsMatchTokenizer(t *testing.T) {
	text := "The quick brown fox jumps. It lands softly! Does anyone notice?"
	s := Aggregate(mdtext.Tokenize(text))
	if s.WordCount != len(mdtext.SplitWords(text)) {
		t.Errorf("word_count = %d, want %d", s.WordCount, len(mdtext.SplitWords(text)))
	}
	if s.SentenceCount != len(mdtext.SplitSentences(text)) {
		t.Errorf("sentence_count = %d, want %d", s.SentenceCount, len(mdtext.SplitSentences(text)))
	}
	if s.SyllableCount < s.WordCount {
		t.Errorf("syllable_count %d < word_count %d", s.SyllableCount, s.WordCount)
	}
	if math.Abs(s.AverageWordsPerSentence-float64(s.WordCount)/3) > 1e-9 {
		t.Errorf("average_words_per_sentence = %f", s.AverageWordsPerSentence)
	}
}

func TestForSentence(t *testing.T) {
	toks, s := ForSentence("Thou art more lovely and more temperate.")
	if len(toks.Sentences) != 1 {
		t.Fatalf("sentences = %v, want 1", toks.Sentences)
	}
	if s.WordCount != 7 {
		t.Errorf("word_count = %d, want 7", s.WordCount)
	}
	if s.LetterCount != 33 {
		t.Errorf("letter_count = %d, want 33", s.LetterCount)
	}
}

func TestMap_HasEveryField(t *testing.T) {
	m := Stats{WordCount: 3}.Map()
	for _, k := range Fields() {
		if _, ok := m[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}
	if len(m) != len(Fields()) {
		t.Errorf("len = %d, want %d", len(m), len(Fields()))
	}
	if m["word_count"] != 3 {
		t.Errorf("word_count = %v, want 3", m["word_count"])
	}
}
