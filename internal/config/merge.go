package config

import (
	"path/filepath"

	"github.com/gobwas/glob"
)

// Merge merges a loaded config on top of defaults. Scalar and list fields
// set in loaded replace the defaults; check thresholds are merged field by
// field. Ignore and Overrides come from the loaded config only.
func Merge(defaults, loaded *Config) *Config {
	out := &Config{
		Formula:  defaults.Formula,
		Formulas: append(FormulaList(nil), defaults.Formulas...),
		Files:    append([]string(nil), defaults.Files...),
		Check:    defaults.Check,
	}
	if loaded == nil {
		return out
	}

	if loaded.Formula != "" {
		out.Formula = loaded.Formula
	}
	if len(loaded.Formulas) > 0 {
		out.Formulas = loaded.Formulas
	}
	if len(loaded.Files) > 0 {
		out.Files = loaded.Files
	}
	out.Check = out.Check.Merge(loaded.Check)
	out.Ignore = loaded.Ignore
	out.Overrides = loaded.Overrides
	return out
}

// Effective returns the check configuration for a given file path. It
// starts with the top-level check settings and then applies each override
// whose file patterns match filePath, in order. Later overrides take
// precedence.
func Effective(cfg *Config, filePath string) CheckCfg {
	result := cfg.Check
	for _, o := range cfg.Overrides {
		if MatchesAny(o.Files, filePath) {
			result = result.Merge(o.Check)
		}
	}
	return result
}

// MatchesAny returns true if filePath, or its base name, matches any of
// the given glob patterns. '*' does not cross directory separators; '**'
// does.
func MatchesAny(patterns []string, filePath string) bool {
	p := filepath.ToSlash(filePath)
	base := filepath.Base(p)
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			// Skip invalid patterns silently.
			continue
		}
		if g.Match(p) || g.Match(base) {
			return true
		}
	}
	return false
}
