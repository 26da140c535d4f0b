// Package mdtext splits prose into sentences, words and syllables, and
// extracts plain text from Markdown.
package mdtext

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokens is the tokenized form of a text. Every word belongs to exactly
// one sentence and Syllables[i] is the syllable count of Words[i].
type Tokens struct {
	Raw       string
	Words     []string
	Sentences []string
	Syllables []int
}

// Tokenize splits text into sentences, words and per-word syllable
// counts. Words are taken sentence by sentence so that text outside any
// sentence never contributes a word.
func Tokenize(text string) Tokens {
	t := Tokens{Raw: text}
	for _, s := range SplitSentences(text) {
		for _, w := range SplitWords(s) {
			t.Words = append(t.Words, w)
			t.Syllables = append(t.Syllables, CountSyllables(w))
		}
		t.Sentences = append(t.Sentences, s)
	}
	return t
}

// SplitSentences splits text into trimmed sentences. A sentence ends at
// a run of '.', '!' or '?' (optionally followed by closing quotes or
// brackets) that is followed by whitespace or the end of the text.
// Spans that contain no word are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isTerminal(r) {
			i += size
			continue
		}

		end := i + size
		for end < len(text) {
			next, n := utf8.DecodeRuneInString(text[end:])
			if !isTerminal(next) && !isCloser(next) {
				break
			}
			end += n
		}

		if end == len(text) || startsWithSpace(text[end:]) {
			sentences = appendSentence(sentences, text[start:end])
			start = end
		}
		i = end
	}
	return appendSentence(sentences, text[start:])
}

func appendSentence(sentences []string, span string) []string {
	span = strings.TrimSpace(span)
	if span == "" || !hasLetter(span) {
		return sentences
	}
	return append(sentences, span)
}

// SplitWords splits text on whitespace and trims leading and trailing
// punctuation from each field. Fields without a letter are discarded.
func SplitWords(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if hasLetter(w) {
			words = append(words, w)
		}
	}
	return words
}

// CountWords returns the number of words in text.
func CountWords(text string) int {
	return len(SplitWords(text))
}

// CountSentences returns the number of sentences in text.
func CountSentences(text string) int {
	return len(SplitSentences(text))
}

// CountLetters returns the number of letters in text. Digits,
// punctuation and whitespace are not counted.
func CountLetters(text string) int {
	n := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

// CountCharacters returns the number of runes in text.
func CountCharacters(text string) int {
	return utf8.RuneCountInString(text)
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’', '»':
		return true
	}
	return false
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
