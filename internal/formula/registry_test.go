package formula

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRegistry_Builtins(t *testing.T) {
	r := NewRegistry()
	names := r.Names()
	if len(names) != len(Builtins) {
		t.Fatalf("names = %v, want %v", names, Builtins)
	}
	for i, n := range Builtins {
		if names[i] != n {
			t.Errorf("name %d = %q, want %q", i, names[i], n)
		}
	}
}

func TestLookup_Normalized(t *testing.T) {
	r := NewRegistry()
	for _, q := range []string{"FleschKincaidRe", "flesch_kincaid_re", "flesch-kincaid-re", "FLESCHKINCAIDRE", " Flesch Kincaid Re "} {
		f, err := r.Lookup(q)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", q, err)
		}
		if f.Name() != "Flesch-Kincaid Reading Ease" {
			t.Errorf("Lookup(%q).Name() = %q", q, f.Name())
		}
	}
}

func TestLookup_UnknownHasActionableError(t *testing.T) {
	r := NewRegistry()
	_, err := r.Lookup("Dale-Chall")
	if !errors.Is(err, ErrUnknownFormula) {
		t.Fatalf("err = %v, want ErrUnknownFormula", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, `"Dale-Chall"`) {
		t.Errorf("error %q should name the formula", msg)
	}
	if !strings.Contains(msg, "available: Ari, ColemanLiau") {
		t.Errorf("error %q should list available formulas", msg)
	}
}

func TestLookup_FakeNotRegisteredByDefault(t *testing.T) {
	if _, err := NewRegistry().Lookup("Fake"); !errors.Is(err, ErrUnknownFormula) {
		t.Fatalf("err = %v, want ErrUnknownFormula", err)
	}
}

func TestRegister_Custom(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("Fake", func() Formula { return Fake{} }); err != nil {
		t.Fatalf("Register: %v", err)
	}
	f, err := r.Lookup("fake")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if f.Name() != "Fake Formula" {
		t.Errorf("name = %q", f.Name())
	}
	if got := r.Names(); got[len(got)-1] != "Fake" {
		t.Errorf("custom formula should be appended, got %v", got)
	}
}

func TestRegister_Rejects(t *testing.T) {
	r := NewRegistry()
	fake := func() Formula { return Fake{} }
	if err := r.Register("", fake); !errors.Is(err, ErrArgument) {
		t.Errorf("empty name: err = %v, want ErrArgument", err)
	}
	if err := r.Register("smog", fake); !errors.Is(err, ErrArgument) {
		t.Errorf("duplicate name: err = %v, want ErrArgument", err)
	}
	if err := r.Register("Other", nil); !errors.Is(err, ErrArgument) {
		t.Errorf("nil factory: err = %v, want ErrArgument", err)
	}
}

func TestLookup_FreshInstances(t *testing.T) {
	r := NewRegistry()
	var calls int
	_ = r.Register("Counted", func() Formula { calls++; return Fake{} })
	_, _ = r.Lookup("Counted")
	_, _ = r.Lookup("Counted")
	if calls != 2 {
		t.Errorf("factory calls = %d, want 2", calls)
	}
}

func TestResolve(t *testing.T) {
	r := NewRegistry()
	got, err := r.Resolve([]string{"smog", "ari"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 2 || got[0] != "Smog" || got[1] != "Ari" {
		t.Errorf("got %v, want [Smog Ari]", got)
	}

	if _, err := r.Resolve(nil); !errors.Is(err, ErrArgument) {
		t.Errorf("empty list: err = %v, want ErrArgument", err)
	}
	if _, err := r.Resolve([]string{"Ari", "bogus"}); !errors.Is(err, ErrUnknownFormula) {
		t.Errorf("unknown: err = %v, want ErrUnknownFormula", err)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" Ari, smog , ,GunningFog ")
	want := []string{"Ari", "smog", "GunningFog"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
	if SplitList("  ") != nil {
		t.Error("blank input should return nil")
	}
}
