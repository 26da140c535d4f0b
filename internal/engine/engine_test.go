package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jethrodaniel/odyssey/internal/formula"
	vlog "github.com/jethrodaniel/odyssey/internal/log"
)

const horse = "A horse, a horse, my kingdom for a horse!"

func TestNew_UnknownFormula(t *testing.T) {
	e, err := New("Lix")
	if !errors.Is(err, formula.ErrUnknownFormula) {
		t.Fatalf("err = %v, want ErrUnknownFormula", err)
	}
	if e != nil {
		t.Error("expected nil engine on error")
	}
}

func TestScore_Default(t *testing.T) {
	e, err := New(formula.Default)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := e.Score("Shall I compare thee to a summer's day?", true); got != 93.0 {
		t.Errorf("score = %v, want 93.0", got)
	}
	if e.FormulaName() != "FleschKincaidRe" {
		t.Errorf("formula name = %q", e.FormulaName())
	}
}

func TestScore_ReusesCacheWithoutRecompute(t *testing.T) {
	e, err := New("Ari")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first := e.Score("Thou art more lovely and more temperate.", true)
	second := e.Score("", false)
	third := e.Score("completely different text here.", false)
	if first != 4.3 {
		t.Fatalf("first = %v, want 4.3", first)
	}
	if second != first || third != first {
		t.Errorf("cached scores = %v, %v; want %v", second, third, first)
	}
}

func TestScore_RecomputeReplacesAnalysis(t *testing.T) {
	e, _ := New("Ari")
	e.Score(horse, true)
	e.Score("One. Two.", true)
	if got := e.Statistics().SentenceCount; got != 2 {
		t.Errorf("sentence_count = %d, want 2", got)
	}
}

func TestScore_FirstCallAnalyzesEvenWithoutRecompute(t *testing.T) {
	e, _ := New("FleschKincaidRe")
	if got := e.Score(horse, false); got != 103.7 {
		t.Errorf("score = %v, want 103.7", got)
	}
}

func TestUpdateFormula_KeepsCache(t *testing.T) {
	e, _ := New("FleschKincaidRe")
	e.Score(horse, true)
	before := e.Tokens()

	if err := e.UpdateFormula("gunning_fog"); err != nil {
		t.Fatalf("UpdateFormula: %v", err)
	}
	if e.FormulaName() != "GunningFog" {
		t.Errorf("formula name = %q, want GunningFog", e.FormulaName())
	}
	if got := e.Score("", false); got != 3.6 {
		t.Errorf("fog = %v, want 3.6", got)
	}
	if e.Tokens().Raw != before.Raw || len(e.Tokens().Words) != len(before.Words) {
		t.Error("tokens changed after formula swap")
	}
}

func TestUpdateFormula_Unknown(t *testing.T) {
	e, _ := New("Ari")
	if err := e.UpdateFormula("nope"); !errors.Is(err, formula.ErrUnknownFormula) {
		t.Fatalf("err = %v, want ErrUnknownFormula", err)
	}
	if e.FormulaName() != "Ari" {
		t.Errorf("failed update changed formula to %q", e.FormulaName())
	}
}

func TestStats_Horse(t *testing.T) {
	e, _ := New("FleschKincaidRe")
	e.Score(horse, true)
	res := e.Stats(false)

	if res.StringLength != 41 || res.LetterCount != 30 || res.SyllableCount != 10 {
		t.Errorf("counts = %+v", res.Stats)
	}
	if res.WordCount != 9 || res.SentenceCount != 1 || res.AverageWordsPerSentence != 9.0 {
		t.Errorf("words/sentences = %+v", res.Stats)
	}
	if res.Name != "Flesch-Kincaid Reading Ease" {
		t.Errorf("name = %q", res.Name)
	}
	if res.Score != 103.7 {
		t.Errorf("score = %v, want 103.7", res.Score)
	}
	if len(res.ScoreBySentence) != 1 {
		t.Fatalf("score_by_sentence = %v, want 1 entry", res.ScoreBySentence)
	}
	if got := res.ScoreBySentence[0]; got.Sentence != horse || got.Score != res.Score {
		t.Errorf("score_by_sentence[0] = %+v", got)
	}
}

func TestStats_RecomputeIsIdempotent(t *testing.T) {
	e, _ := New("Smog")
	e.Score(horse, true)
	a := e.Stats(true)
	b := e.Stats(false)
	if a.Stats != b.Stats || a.Score != b.Score {
		t.Errorf("recomputed %+v != cached %+v", a, b)
	}
}

func TestStats_BeforeAnyScoreIsZero(t *testing.T) {
	e, _ := New("Ari")
	res := e.Stats(false)
	if res.WordCount != 0 || res.Score != 0 || len(res.ScoreBySentence) != 0 {
		t.Errorf("expected zero result, got %+v", res)
	}
}

func TestWithRegistry_Custom(t *testing.T) {
	reg := formula.NewRegistry()
	if err := reg.Register("FakeFormula", func() formula.Formula { return formula.Fake{} }); err != nil {
		t.Fatal(err)
	}
	e, err := New("fake_formula", WithRegistry(reg))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := e.Score(horse, true); got != 0 {
		t.Errorf("score = %v, want 0", got)
	}
	if res := e.Stats(false); len(res.ScoreBySentence) != 0 {
		t.Errorf("score_by_sentence = %v, want empty", res.ScoreBySentence)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	e, _ := New("Ari", WithLogger(&vlog.Logger{Enabled: true, W: &buf}))
	e.Score(horse, true)
	e.Score("", false)
	out := buf.String()
	for _, want := range []string{"formula: Ari", "analyzed: 1 sentences, 9 words", "reusing cached analysis"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}

func TestResult_MapAndJSON(t *testing.T) {
	e, _ := New("Ari")
	e.Score(horse, true)
	res := MultiResult{Result: e.Stats(false), Scores: map[string]float64{"Ari": -1.2}}

	m := res.Map()
	for _, k := range []string{"string_length", "name", "formula", "score", "score_by_sentence", "scores"} {
		if _, ok := m[k]; !ok {
			t.Errorf("map missing %q", k)
		}
	}

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw["word_count"] != float64(9) {
		t.Errorf("word_count = %v, want 9", raw["word_count"])
	}
	if _, ok := raw["formula"]; ok {
		t.Error("formula instance should not be serialized")
	}
	if _, ok := raw["scores"]; !ok {
		t.Error("scores missing from JSON")
	}
}
