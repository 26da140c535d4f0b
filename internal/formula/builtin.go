package formula

import (
	"math"

	"github.com/jethrodaniel/odyssey/internal/mdtext"
	"github.com/jethrodaniel/odyssey/internal/stats"
)

// ARI is the Automated Readability Index.
// Formula: 4.71*(letters/words) + 0.5*(words/sentences) - 21.43
type ARI struct{}

func (ARI) Name() string { return "Automated Readability Index" }

func (ARI) Score(t mdtext.Tokens, s stats.Stats) float64 {
	return evaluate(ari, t, s)
}

func (ARI) ScoreBySentence(t mdtext.Tokens, _ stats.Stats) []SentenceScore {
	return bySentence(ari, t)
}

func ari(_ mdtext.Tokens, s stats.Stats) float64 {
	return 4.71*float64(s.LetterCount)/float64(s.WordCount) +
		0.5*float64(s.WordCount)/float64(s.SentenceCount) -
		21.43
}

// ColemanLiau is the Coleman-Liau index.
// Formula: 0.0588*L - 0.296*S - 15.8, where L is letters per 100 words
// and S is sentences per 100 words.
type ColemanLiau struct{}

func (ColemanLiau) Name() string { return "Coleman-Liau Test" }

func (ColemanLiau) Score(t mdtext.Tokens, s stats.Stats) float64 {
	return evaluate(colemanLiau, t, s)
}

func (ColemanLiau) ScoreBySentence(t mdtext.Tokens, _ stats.Stats) []SentenceScore {
	return bySentence(colemanLiau, t)
}

func colemanLiau(_ mdtext.Tokens, s stats.Stats) float64 {
	words := float64(s.WordCount)
	l := float64(s.LetterCount) / words * 100
	sen := float64(s.SentenceCount) / words * 100
	return 0.0588*l - 0.296*sen - 15.8
}

// FleschKincaidGL is the Flesch-Kincaid grade level.
type FleschKincaidGL struct{}

func (FleschKincaidGL) Name() string { return "Flesch-Kincaid Grade Level" }

func (FleschKincaidGL) Score(t mdtext.Tokens, s stats.Stats) float64 {
	return evaluate(fleschKincaidGL, t, s)
}

func (FleschKincaidGL) ScoreBySentence(t mdtext.Tokens, _ stats.Stats) []SentenceScore {
	return bySentence(fleschKincaidGL, t)
}

func fleschKincaidGL(_ mdtext.Tokens, s stats.Stats) float64 {
	return 0.39*s.AverageWordsPerSentence + 11.8*s.AverageSyllablesPerWord - 15.59
}

// FleschKincaidRE is the Flesch reading ease score. Higher is easier.
type FleschKincaidRE struct{}

func (FleschKincaidRE) Name() string { return "Flesch-Kincaid Reading Ease" }

func (FleschKincaidRE) Score(t mdtext.Tokens, s stats.Stats) float64 {
	return evaluate(fleschKincaidRE, t, s)
}

func (FleschKincaidRE) ScoreBySentence(t mdtext.Tokens, _ stats.Stats) []SentenceScore {
	return bySentence(fleschKincaidRE, t)
}

// HigherIsEasier implements Ease.
func (FleschKincaidRE) HigherIsEasier() bool { return true }

func fleschKincaidRE(_ mdtext.Tokens, s stats.Stats) float64 {
	return 206.835 - 1.015*s.AverageWordsPerSentence - 84.6*s.AverageSyllablesPerWord
}

// GunningFog is the Gunning fog index. Complex words have three or
// more syllables.
type GunningFog struct{}

func (GunningFog) Name() string { return "Gunning-Fog Score" }

func (GunningFog) Score(t mdtext.Tokens, s stats.Stats) float64 {
	return evaluate(gunningFog, t, s)
}

func (GunningFog) ScoreBySentence(t mdtext.Tokens, _ stats.Stats) []SentenceScore {
	return bySentence(gunningFog, t)
}

func gunningFog(t mdtext.Tokens, s stats.Stats) float64 {
	complexWords := float64(mdtext.PolysyllableCount(t.Syllables))
	return 0.4 * (s.AverageWordsPerSentence + 100*complexWords/float64(s.WordCount))
}

// SMOG is the SMOG grade.
// Formula: 1.0430*sqrt(30*(polysyllables/sentences)) + 3.1291
type SMOG struct{}

func (SMOG) Name() string { return "SMOG Index" }

func (SMOG) Score(t mdtext.Tokens, s stats.Stats) float64 {
	return evaluate(smog, t, s)
}

func (SMOG) ScoreBySentence(t mdtext.Tokens, _ stats.Stats) []SentenceScore {
	return bySentence(smog, t)
}

func smog(t mdtext.Tokens, s stats.Stats) float64 {
	poly := float64(mdtext.PolysyllableCount(t.Syllables))
	return 1.0430*math.Sqrt(30*poly/float64(s.SentenceCount)) + 3.1291
}

// Fake scores every text 0 and has no per-sentence breakdown. It exists
// to exercise the Formula contract and is not registered by default.
type Fake struct{}

func (Fake) Name() string { return "Fake Formula" }

func (Fake) Score(mdtext.Tokens, stats.Stats) float64 { return 0 }

func (Fake) ScoreBySentence(mdtext.Tokens, stats.Stats) []SentenceScore {
	return []SentenceScore{}
}

var (
	_ Formula = ARI{}
	_ Formula = ColemanLiau{}
	_ Formula = FleschKincaidGL{}
	_ Formula = FleschKincaidRE{}
	_ Formula = GunningFog{}
	_ Formula = SMOG{}
	_ Formula = Fake{}
	_ Ease    = FleschKincaidRE{}
)
