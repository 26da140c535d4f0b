// Package config loads .odyssey.yml files.
package config

import (
	"fmt"
	"strings"

	"github.com/jethrodaniel/odyssey/internal/formula"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Formula   string      `yaml:"formula,omitempty"`
	Formulas  FormulaList `yaml:"formulas,omitempty"`
	Files     []string    `yaml:"files,omitempty"`
	Ignore    []string    `yaml:"ignore,omitempty"`
	Check     CheckCfg    `yaml:"check,omitempty"`
	Overrides []Override  `yaml:"overrides,omitempty"`
}

// CheckCfg holds the paragraph check thresholds. Nil fields are unset
// and fall back to the next layer when merged.
type CheckCfg struct {
	Formula  string   `yaml:"formula,omitempty"`
	MaxGrade *float64 `yaml:"max-grade,omitempty"`
	MinEase  *float64 `yaml:"min-ease,omitempty"`
	MinWords *int     `yaml:"min-words,omitempty"`
}

// Override applies check settings to files matching glob patterns.
type Override struct {
	Files []string `yaml:"files"`
	Check CheckCfg `yaml:"check"`
}

// FormulaList is a YAML union: either a sequence of names or a single
// comma-separated string.
type FormulaList []string

// UnmarshalYAML implements custom YAML unmarshalling for FormulaList.
// It handles two forms:
//   - "Ari, Smog"    -> [Ari Smog]
//   - [Ari, Smog]    -> [Ari Smog]
func (l *FormulaList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = formula.SplitList(value.Value)
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return fmt.Errorf("invalid formula list: %w", err)
		}
		out := make([]string, 0, len(names))
		for _, n := range names {
			if n = strings.TrimSpace(n); n != "" {
				out = append(out, n)
			}
		}
		*l = out
		return nil
	}
	return fmt.Errorf("formulas must be a string or a sequence, got %v", value.Kind)
}

// Merge returns c with every field set in o taking precedence.
func (c CheckCfg) Merge(o CheckCfg) CheckCfg {
	if o.Formula != "" {
		c.Formula = o.Formula
	}
	if o.MaxGrade != nil {
		c.MaxGrade = o.MaxGrade
	}
	if o.MinEase != nil {
		c.MinEase = o.MinEase
	}
	if o.MinWords != nil {
		c.MinWords = o.MinWords
	}
	return c
}

// Validate reports the first formula name that reg cannot resolve and
// any negative min-words setting.
func (c *Config) Validate(reg *formula.Registry) error {
	names := make([]string, 0, len(c.Formulas)+2+len(c.Overrides))
	if c.Formula != "" {
		names = append(names, c.Formula)
	}
	names = append(names, c.Formulas...)
	checks := []CheckCfg{c.Check}
	for _, o := range c.Overrides {
		checks = append(checks, o.Check)
	}
	for _, ch := range checks {
		if ch.Formula != "" {
			names = append(names, ch.Formula)
		}
		if ch.MinWords != nil && *ch.MinWords < 0 {
			return fmt.Errorf("check.min-words must be >= 0, got %d", *ch.MinWords)
		}
	}
	for _, n := range names {
		if _, err := reg.Lookup(n); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}
