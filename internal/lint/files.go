package lint

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// IsMarkdown returns true if the file extension is .md or .markdown.
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// matchesGlob returns true if path matches any of the given glob patterns.
func matchesGlob(patterns []string, path string) bool {
	slashed := filepath.ToSlash(filepath.Clean(path))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			continue
		}
		if g.Match(slashed) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

// hasGlobChars returns true if the string contains glob meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// ResolveFiles takes positional arguments and returns deduplicated, sorted
// markdown file paths. It supports individual files, directories (recursive
// *.md and *.markdown, skipping hidden directories), and doublestar glob
// patterns. Paths matching an ignore pattern are dropped, except files
// named explicitly. Returns an error for nonexistent paths that are not
// glob patterns.
func ResolveFiles(args, ignore []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	addFile := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			result = append(result, path)
		}
	}

	for _, arg := range args {
		if err := resolveArg(arg, ignore, addFile); err != nil {
			return nil, err
		}
	}

	sort.Strings(result)
	return result, nil
}

func resolveArg(arg string, ignore []string, addFile func(string)) error {
	if hasGlobChars(arg) {
		return resolveGlob(arg, ignore, addFile)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", arg, err)
	}

	if info.IsDir() {
		return walkDir(arg, ignore, addFile)
	}

	addFile(arg)
	return nil
}

func resolveGlob(pattern string, ignore []string, addFile func(string)) error {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if info.IsDir() {
			if err := walkDir(m, ignore, addFile); err != nil {
				return err
			}
		} else if IsMarkdown(m) && !matchesGlob(ignore, m) {
			addFile(m)
		}
	}
	return nil
}

// walkDir recursively walks a directory and adds all markdown files.
func walkDir(dir string, ignore []string, addFile func(string)) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && (strings.HasPrefix(d.Name(), ".") || matchesGlob(ignore, path)) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsMarkdown(path) && !matchesGlob(ignore, path) {
			addFile(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking directory %q: %w", dir, err)
	}
	return nil
}
