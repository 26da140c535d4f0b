// Package discovery finds Markdown files by expanding the glob patterns
// of a config's files list.
package discovery

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jethrodaniel/odyssey/internal/config"
)

// Options controls how file discovery behaves.
type Options struct {
	// Patterns is the list of doublestar patterns, relative to BaseDir,
	// to match files against. An empty list means no files are discovered.
	Patterns []string

	// Ignore drops files and directories matching any of these patterns.
	Ignore []string

	// BaseDir is the directory to walk from. Defaults to "." if empty.
	BaseDir string
}

// Discover walks BaseDir and returns files matching any of the configured
// patterns, joined onto BaseDir. Hidden directories are not entered.
// Results are deduplicated and sorted.
func Discover(opts Options) ([]string, error) {
	patterns := validatePatterns(opts.Patterns)
	if len(patterns) == 0 {
		return nil, nil
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}

	var result []string
	err := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(baseDir, path)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") || config.MatchesAny(opts.Ignore, rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if config.MatchesAny(opts.Ignore, rel) {
			return nil
		}
		if matchesAny(patterns, rel) {
			result = append(result, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(result)
	return result, nil
}

// validatePatterns returns patterns that are syntactically valid.
func validatePatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

func matchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}
