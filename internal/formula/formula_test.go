package formula

import (
	"testing"

	"github.com/jethrodaniel/odyssey/internal/mdtext"
	"github.com/jethrodaniel/odyssey/internal/stats"
)

const horse = "A horse, a horse, my kingdom for a horse!"

func analyze(text string) (mdtext.Tokens, stats.Stats) {
	t := mdtext.Tokenize(text)
	return t, stats.Aggregate(t)
}

func TestScore_Shakespeare(t *testing.T) {
	tests := []struct {
		text    string
		formula Formula
		want    float64
	}{
		{"Shall I compare thee to a summer's day?", FleschKincaidRE{}, 93.0},
		{"Thou art more lovely and more temperate.", ARI{}, 4.3},
		{horse, FleschKincaidRE{}, 103.7},
		{horse, ARI{}, -1.2},
		{horse, FleschKincaidGL{}, 1.0},
		{horse, ColemanLiau{}, 0.5},
		{horse, GunningFog{}, 3.6},
		{horse, SMOG{}, 3.1},
	}
	for _, tt := range tests {
		toks, s := analyze(tt.text)
		if got := tt.formula.Score(toks, s); got != tt.want {
			t.Errorf("%s(%q) = %v, want %v", tt.formula.Name(), tt.text, got, tt.want)
		}
	}
}

func TestScore_PolysyllablesRaiseFogAndSmog(t *testing.T) {
	easy, easyStats := analyze("The cat sat on the mat. The dog ran.")
	hard, hardStats := analyze(
		"Sophisticated computational paradigms necessitate extraordinary " +
			"organizational capabilities.",
	)
	for _, f := range []Formula{GunningFog{}, SMOG{}} {
		e := f.Score(easy, easyStats)
		h := f.Score(hard, hardStats)
		if h <= e {
			t.Errorf("%s: hard %.1f should exceed easy %.1f", f.Name(), h, e)
		}
	}
}

func TestScore_DegenerateIsZero(t *testing.T) {
	reg := NewRegistry()
	for _, text := range []string{"", "   ", "...", "?! --"} {
		toks, s := analyze(text)
		for _, name := range Builtins {
			f, err := reg.Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%s): %v", name, err)
			}
			if got := f.Score(toks, s); got != 0 {
				t.Errorf("%s(%q) = %v, want 0", name, text, got)
			}
			if got := f.ScoreBySentence(toks, s); len(got) != 0 {
				t.Errorf("%s(%q) by sentence = %v, want empty", name, text, got)
			}
		}
	}
}

func TestScoreBySentence_SingleSentenceMatchesScore(t *testing.T) {
	toks, s := analyze(horse)
	for _, f := range []Formula{ARI{}, ColemanLiau{}, FleschKincaidGL{}, FleschKincaidRE{}, GunningFog{}, SMOG{}} {
		by := f.ScoreBySentence(toks, s)
		if len(by) != 1 {
			t.Fatalf("%s: got %d sentence scores, want 1", f.Name(), len(by))
		}
		if by[0].Sentence != horse {
			t.Errorf("%s: sentence = %q, want %q", f.Name(), by[0].Sentence, horse)
		}
		if by[0].Score != f.Score(toks, s) {
			t.Errorf("%s: sentence score %v != overall %v", f.Name(), by[0].Score, f.Score(toks, s))
		}
	}
}

func TestScoreBySentence_OrderAndIsolation(t *testing.T) {
	toks, s := analyze("The cat sat. The dog ran far away.")
	by := FleschKincaidRE{}.ScoreBySentence(toks, s)
	want := []SentenceScore{
		{Score: 119.2, Sentence: "The cat sat."},
		{Score: 100.2, Sentence: "The dog ran far away."},
	}
	if len(by) != len(want) {
		t.Fatalf("got %v, want %v", by, want)
	}
	for i := range want {
		if by[i] != want[i] {
			t.Errorf("entry %d: got %+v, want %+v", i, by[i], want[i])
		}
	}
}

func TestFake(t *testing.T) {
	toks, s := analyze(horse)
	f := Fake{}
	if got := f.Score(toks, s); got != 0 {
		t.Errorf("score = %v, want 0", got)
	}
	by := f.ScoreBySentence(toks, s)
	if by == nil || len(by) != 0 {
		t.Errorf("by sentence = %#v, want empty non-nil", by)
	}
}

func TestHigherIsEasier(t *testing.T) {
	if !HigherIsEasier(FleschKincaidRE{}) {
		t.Error("reading ease should be higher-is-easier")
	}
	for _, f := range []Formula{ARI{}, ColemanLiau{}, FleschKincaidGL{}, GunningFog{}, SMOG{}, Fake{}} {
		if HigherIsEasier(f) {
			t.Errorf("%s should not be higher-is-easier", f.Name())
		}
	}
}

func TestRound(t *testing.T) {
	cases := map[float64]float64{
		92.965:  93.0,
		4.274:   4.3,
		-1.23:   -1.2,
		0.05:    0.1,
		103.7:   103.7,
		-0.04:   0,
		12.3456: 12.3,
	}
	for in, want := range cases {
		if got := Round(in); got != want {
			t.Errorf("Round(%v) = %v, want %v", in, got, want)
		}
	}
}
