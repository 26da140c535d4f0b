package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jethrodaniel/odyssey/internal/formula"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file Discover looks for.
const FileName = ".odyssey.yml"

// Default thresholds for the paragraph check.
const (
	DefaultMaxGrade = 14.0
	DefaultMinEase  = 30.0
	DefaultMinWords = 20
	DefaultCheck    = "Ari"
)

// Load reads and parses a config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .odyssey.yml config file. It stops searching when it encounters a .git
// directory (the repository root) or reaches the filesystem root.
// Returns the path to the config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Defaults returns the built-in configuration: the default formula, every
// builtin formula for multi-formula reports, markdown file patterns and
// the default check thresholds.
func Defaults() *Config {
	maxGrade, minEase, minWords := DefaultMaxGrade, DefaultMinEase, DefaultMinWords
	return &Config{
		Formula:  formula.Default,
		Formulas: append(FormulaList(nil), formula.Builtins...),
		Files:    []string{"**/*.md", "**/*.markdown"},
		Check: CheckCfg{
			Formula:  DefaultCheck,
			MaxGrade: &maxGrade,
			MinEase:  &minEase,
			MinWords: &minWords,
		},
	}
}

// Marshal renders cfg as YAML. It is consumed by `odyssey init`.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}
