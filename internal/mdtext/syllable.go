package mdtext

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CountSyllables estimates the syllables in word by counting vowel
// groups. A trailing silent 'e' is dropped unless the word ends in "le",
// the 'e' follows another vowel, or it is the only vowel group. Every
// word has at least one syllable.
func CountSyllables(word string) int {
	letters := asciiLetters(fold(word))

	groups := 0
	inVowel := false
	for _, c := range letters {
		v := isVowel(c)
		if v && !inVowel {
			groups++
		}
		inVowel = v
	}

	if groups > 1 && silentE(letters) {
		groups--
	}
	if groups < 1 {
		return 1
	}
	return groups
}

// PolysyllableCount returns how many of the given syllable counts are
// three or more.
func PolysyllableCount(syllables []int) int {
	n := 0
	for _, s := range syllables {
		if s >= 3 {
			n++
		}
	}
	return n
}

func silentE(letters []byte) bool {
	n := len(letters)
	if n < 2 || letters[n-1] != 'e' {
		return false
	}
	prev := letters[n-2]
	return !isVowel(prev) && prev != 'l'
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// fold lower-cases word and strips combining marks, so "Café" becomes
// "cafe".
func fold(word string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, word)
	if err != nil {
		s = word
	}
	return strings.ToLower(s)
}

func asciiLetters(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			out = append(out, c)
		}
	}
	return out
}
