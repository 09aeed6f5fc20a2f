package tail

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"lodestone/internal/app/errors"
)

// Matcher checks if file paths match configured log patterns
type Matcher interface {
	Match(path string) bool
	MatchDir(dirPath string) bool
}

// matcher implements the Matcher interface
type matcher struct {
	patterns []glob.Glob
	ignores  []glob.Glob
}

// NewMatcher creates a new Matcher from include and ignore patterns
func NewMatcher(includes, ignores []string) (Matcher, error) {
	m := &matcher{
		patterns: make([]glob.Glob, 0, len(includes)),
		ignores:  make([]glob.Glob, 0, len(ignores)),
	}

	for _, p := range expandPatterns(includes) {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: '%s'", errors.ErrInvalidGlob, p)
		}

		m.patterns = append(m.patterns, g)
	}

	for _, p := range expandPatterns(ignores) {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: '%s'", errors.ErrInvalidGlob, p)
		}

		m.ignores = append(m.ignores, g)
	}

	return m, nil
}

// expandPatterns expands patterns starting with **/ to also match at root level
func expandPatterns(patterns []string) []string {
	expanded := make([]string, 0, len(patterns)*2)

	for _, p := range patterns {
		expanded = append(expanded, p)

		if strings.HasPrefix(p, "**/") {
			expanded = append(expanded, strings.TrimPrefix(p, "**/"))
		}
	}

	return expanded
}

// Match returns true if the path matches any pattern and is not ignored
func (m *matcher) Match(path string) bool {
	path = normalizePath(path)

	for _, ignore := range m.ignores {
		if ignore.Match(path) {
			return false
		}
	}

	for _, pattern := range m.patterns {
		if pattern.Match(path) {
			return true
		}
	}

	return false
}

// MatchDir returns true if a directory should be skipped based on ignore patterns
func (m *matcher) MatchDir(dirPath string) bool {
	probe := normalizePath(dirPath + "/_probe")

	for _, ignore := range m.ignores {
		if ignore.Match(probe) {
			return true
		}
	}

	return false
}

// normalizePath converts path separators and removes leading ./
func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	return path
}

// Discover walks an instance directory and returns the log files matching
// the include patterns, relative paths sorted for stable listings
func Discover(dir string, matcher Matcher) ([]string, error) {
	var found []string

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if rel != "." && matcher.MatchDir(rel) {
				return filepath.SkipDir
			}

			return nil
		}

		if matcher.Match(rel) {
			found = append(found, rel)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(found)

	return found, nil
}
