package formula

import (
	"errors"
	"fmt"
	"strings"
)

// Default is the formula used when no name is given.
const Default = "FleschKincaidRe"

// Builtins lists the canonical names of the builtin formulas.
var Builtins = []string{
	"Ari",
	"ColemanLiau",
	"FleschKincaidGl",
	"FleschKincaidRe",
	"GunningFog",
	"Smog",
}

var (
	// ErrUnknownFormula is returned when a name resolves to no formula.
	ErrUnknownFormula = errors.New("unknown formula")
	// ErrArgument is returned for malformed arguments such as an empty
	// formula list.
	ErrArgument = errors.New("invalid argument")
)

// Factory constructs a fresh formula instance.
type Factory func() Formula

type entry struct {
	name    string
	key     string
	factory Factory
}

// Registry maps formula names to factories. Lookups ignore case and the
// separators '_', '-' and ' ', so "flesch_kincaid_re" finds
// "FleschKincaidRe". A Registry is not safe for concurrent Register calls.
type Registry struct {
	entries []entry
}

// NewRegistry returns a registry holding the builtin formulas.
func NewRegistry() *Registry {
	r := &Registry{}
	r.mustRegister("Ari", func() Formula { return ARI{} })
	r.mustRegister("ColemanLiau", func() Formula { return ColemanLiau{} })
	r.mustRegister("FleschKincaidGl", func() Formula { return FleschKincaidGL{} })
	r.mustRegister("FleschKincaidRe", func() Formula { return FleschKincaidRE{} })
	r.mustRegister("GunningFog", func() Formula { return GunningFog{} })
	r.mustRegister("Smog", func() Formula { return SMOG{} })
	return r
}

// Register adds a formula under name. Names must be non-empty and unique
// after normalization.
func (r *Registry) Register(name string, f Factory) error {
	key := normalize(name)
	if key == "" {
		return fmt.Errorf("%w: formula name must not be empty", ErrArgument)
	}
	if f == nil {
		return fmt.Errorf("%w: formula %q has no factory", ErrArgument, name)
	}
	if _, ok := r.find(key); ok {
		return fmt.Errorf("%w: formula %q already registered", ErrArgument, name)
	}
	r.entries = append(r.entries, entry{name: strings.TrimSpace(name), key: key, factory: f})
	return nil
}

func (r *Registry) mustRegister(name string, f Factory) {
	if err := r.Register(name, f); err != nil {
		panic(err)
	}
}

// Lookup returns a new instance of the named formula.
func (r *Registry) Lookup(name string) (Formula, error) {
	e, ok := r.find(normalize(name))
	if !ok {
		return nil, fmt.Errorf(
			"%w %q (available: %s)",
			ErrUnknownFormula, name, strings.Join(r.Names(), ", "),
		)
	}
	return e.factory(), nil
}

// Canonical returns the registered spelling of name.
func (r *Registry) Canonical(name string) (string, bool) {
	e, ok := r.find(normalize(name))
	return e.name, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.name)
	}
	return names
}

// Resolve looks up every name, keeping the given order. An empty list is
// an ErrArgument.
func (r *Registry) Resolve(names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: you must supply at least one formula", ErrArgument)
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		canonical, ok := r.Canonical(n)
		if !ok {
			_, err := r.Lookup(n)
			return nil, err
		}
		out = append(out, canonical)
	}
	return out, nil
}

func (r *Registry) find(key string) (entry, bool) {
	for _, e := range r.entries {
		if e.key == key {
			return e, true
		}
	}
	return entry{}, false
}

// SplitList parses comma-separated formula names.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch r {
		case '_', '-', ' ', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
