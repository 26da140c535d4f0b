package metrics

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/jethrodaniel/odyssey/internal/formula"
	"github.com/jethrodaniel/odyssey/internal/stats"
)

var registry = buildRegistry()

func buildRegistry() []Definition {
	defs := []Definition{
		countMetric("MET001", "words", "Word count from extracted plain text.", true,
			func(s stats.Stats) int { return s.WordCount }),
		countMetric("MET002", "sentences", "Sentence count from extracted plain text.", true,
			func(s stats.Stats) int { return s.SentenceCount }),
		countMetric("MET003", "syllables", "Estimated syllable count.", false,
			func(s stats.Stats) int { return s.SyllableCount }),
		countMetric("MET004", "letters", "Letter count from extracted plain text.", false,
			func(s stats.Stats) int { return s.LetterCount }),
		{
			ID:           "MET005",
			Name:         "headings",
			Description:  "Heading count (#, ##, etc.).",
			DefaultOrder: OrderDesc,
			Compute: func(doc *Document) (Value, error) {
				n, err := doc.HeadingCount()
				if err != nil {
					return Missing, err
				}
				return Some(float64(n)), nil
			},
		},
	}

	reg := formula.NewRegistry()
	for i, name := range formula.Builtins {
		f, err := reg.Lookup(name)
		if err != nil {
			panic(err)
		}
		defs = append(defs, formulaMetric(fmt.Sprintf("MET1%02d", i+1), name, f))
	}
	return defs
}

func countMetric(id, name, desc string, def bool, pick func(stats.Stats) int) Definition {
	return Definition{
		ID:           id,
		Name:         name,
		Description:  desc,
		Default:      def,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			s, err := doc.Stats()
			if err != nil {
				return Missing, err
			}
			return Some(float64(pick(s))), nil
		},
	}
}

func formulaMetric(id, name string, f formula.Formula) Definition {
	order := OrderDesc
	if formula.HigherIsEasier(f) {
		order = OrderAsc
	}
	return Definition{
		ID:           id,
		Name:         kebab(name),
		Description:  f.Name() + ".",
		Precision:    1,
		Default:      true,
		DefaultOrder: order,
		Compute: func(doc *Document) (Value, error) {
			return doc.Score(f)
		},
	}
}

// kebab turns "FleschKincaidRe" into "flesch-kincaid-re".
func kebab(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// All returns all metrics sorted by ID.
func All() []Definition {
	defs := append([]Definition(nil), registry...)
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// Defaults returns the default-selected metrics.
func Defaults() []Definition {
	all := All()
	out := make([]Definition, 0, len(all))
	for _, def := range all {
		if def.Default {
			out = append(out, def)
		}
	}
	return out
}

// Lookup searches by metric ID or name, ignoring case and the
// separators '-', '_' and ' '. Formula registry names such as
// "FleschKincaidRe" therefore resolve too.
func Lookup(query string) (Definition, bool) {
	for _, def := range All() {
		if matches(def, query) {
			return def, true
		}
	}
	return Definition{}, false
}

// Resolve resolves user-selected metric names/IDs.
// Empty names returns default metrics.
func Resolve(names []string) ([]Definition, error) {
	if len(names) == 0 {
		return Defaults(), nil
	}

	seen := make(map[string]struct{}, len(names))
	defs := make([]Definition, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		def, ok := Lookup(name)
		if !ok {
			return nil, unknownMetricErr(name)
		}

		if _, exists := seen[def.ID]; exists {
			continue
		}
		seen[def.ID] = struct{}{}
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no metrics selected")
	}
	return defs, nil
}

func matches(def Definition, query string) bool {
	q := fold(query)
	if q == "" {
		return false
	}
	return fold(def.ID) == q || fold(def.Name) == q
}

func fold(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '\t':
			return -1
		}
		return unicode.ToLower(r)
	}, strings.TrimSpace(s))
}

func unknownMetricErr(name string) error {
	return fmt.Errorf(
		"unknown metric %q (available: %s)",
		name,
		strings.Join(availableNames(), ", "),
	)
}

func availableNames() []string {
	defs := All()
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}
