package metrics

import (
	"strings"
	"testing"
)

func TestParseOrder(t *testing.T) {
	order, err := ParseOrder("asc")
	if err != nil {
		t.Fatalf("ParseOrder(asc): %v", err)
	}
	if order != OrderAsc {
		t.Fatalf("order = %q, want %q", order, OrderAsc)
	}

	order, err = ParseOrder("")
	if err != nil {
		t.Fatalf("ParseOrder(empty): %v", err)
	}
	if order != OrderDesc {
		t.Fatalf("default order = %q, want %q", order, OrderDesc)
	}

	if _, err := ParseOrder("sideways"); err == nil {
		t.Fatal("expected error for invalid order")
	}
}

func TestAll_FormulaMetrics(t *testing.T) {
	want := map[string]Order{
		"ari":               OrderDesc,
		"coleman-liau":      OrderDesc,
		"flesch-kincaid-gl": OrderDesc,
		"flesch-kincaid-re": OrderAsc,
		"gunning-fog":       OrderDesc,
		"smog":              OrderDesc,
	}
	for name, order := range want {
		def, ok := Lookup(name)
		if !ok {
			t.Errorf("metric %q not registered", name)
			continue
		}
		if def.DefaultOrder != order {
			t.Errorf("%s: order = %q, want %q", name, def.DefaultOrder, order)
		}
		if def.Precision != 1 {
			t.Errorf("%s: precision = %d, want 1", name, def.Precision)
		}
	}
}

func TestAll_SortedByID(t *testing.T) {
	all := All()
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("metrics not sorted: %s before %s", all[i-1].ID, all[i].ID)
		}
	}
}

func TestLookup_Aliases(t *testing.T) {
	for _, q := range []string{"MET001", "met001", "words", "WORDS"} {
		if def, ok := Lookup(q); !ok || def.Name != "words" {
			t.Errorf("Lookup(%q) = %q, %v", q, def.Name, ok)
		}
	}
	for _, q := range []string{"FleschKincaidRe", "flesch_kincaid_re", "flesch kincaid re"} {
		if def, ok := Lookup(q); !ok || def.Name != "flesch-kincaid-re" {
			t.Errorf("Lookup(%q) = %q, %v", q, def.Name, ok)
		}
	}
	if _, ok := Lookup(""); ok {
		t.Error("empty query should not match")
	}
}

func TestResolve_Defaults(t *testing.T) {
	defs, err := Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve defaults: %v", err)
	}
	if len(defs) == 0 {
		t.Fatal("expected default metrics")
	}
	if defs[0].ID != "MET001" {
		t.Fatalf("first default metric = %q, want MET001", defs[0].ID)
	}
	for _, d := range defs {
		if d.Name == "headings" {
			t.Error("headings should not be a default metric")
		}
	}
}

func TestResolve_UnknownMetricHasActionableError(t *testing.T) {
	_, err := Resolve([]string{"bogus"})
	if err == nil {
		t.Fatal("expected error for unknown metric")
	}
	if !strings.Contains(err.Error(), "available:") || !strings.Contains(err.Error(), "smog") {
		t.Fatalf("error should list available metrics, got %v", err)
	}
}

func TestResolve_DeduplicatesAndSkipsBlanks(t *testing.T) {
	defs, err := Resolve([]string{"words", " ", "MET001", "smog"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(defs) != 2 || defs[0].Name != "words" || defs[1].Name != "smog" {
		t.Fatalf("got %v", defs)
	}
	if _, err := Resolve([]string{" "}); err == nil {
		t.Fatal("expected error when nothing is selected")
	}
}

func TestKebab(t *testing.T) {
	tests := map[string]string{
		"Ari":             "ari",
		"ColemanLiau":     "coleman-liau",
		"FleschKincaidGl": "flesch-kincaid-gl",
		"Smog":            "smog",
	}
	for in, want := range tests {
		if got := kebab(in); got != want {
			t.Errorf("kebab(%q) = %q, want %q", in, got, want)
		}
	}
}
