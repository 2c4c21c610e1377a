package collector

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher decides which paths found under the workspace root are left out,
// combining doublestar exclude globs with an optional .gitignore matcher.
// The zero value and a nil *Matcher exclude nothing.
type Matcher struct {
	root     string
	patterns []string
	ignore   IgnoreMatcher
}

// NewMatcher builds a Matcher. patterns are matched against slash paths
// relative to root; ignore, if non-nil, receives absolute paths.
func NewMatcher(root string, patterns []string, ignore IgnoreMatcher) *Matcher {
	return &Matcher{root: root, patterns: patterns, ignore: ignore}
}

// Below returns a Matcher for walking dir. Rules that already exclude dir
// itself are dropped, so a directory the user picked on purpose is expanded
// in full while rules that only match deeper paths still apply.
func (m *Matcher) Below(dir string) *Matcher {
	if m == nil {
		return nil
	}
	rel := m.Relative(dir)
	if rel == "." {
		return m
	}

	out := &Matcher{root: m.root, ignore: m.ignore}
	if m.ignore != nil && m.ignore.Match(dir, true) {
		out.ignore = nil
	}
	for _, pattern := range m.patterns {
		if !matchDir(pattern, rel) {
			out.patterns = append(out.patterns, pattern)
		}
	}
	return out
}

// Excluded reports whether the absolute path should be dropped. A directory
// is excluded when an arbitrary child of it would be.
func (m *Matcher) Excluded(path string, isDir bool) bool {
	_, ok := m.Rule(path, isDir)
	return ok
}

// Rule is Excluded that also names the rule that matched.
func (m *Matcher) Rule(path string, isDir bool) (string, bool) {
	if m == nil {
		return "", false
	}
	if m.ignore != nil && m.ignore.Match(path, isDir) {
		return ".gitignore", true
	}
	if len(m.patterns) == 0 {
		return "", false
	}
	rel := m.Relative(path)
	for _, pattern := range m.patterns {
		// Patterns are validated on config load, so errors mean no match.
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return pattern, true
		}
		if isDir && matchDir(pattern, rel) {
			return pattern, true
		}
	}
	return "", false
}

// Relative returns path relative to the root with forward slashes.
func (m *Matcher) Relative(path string) string {
	if m.root == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(m.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func matchDir(pattern, rel string) bool {
	ok, _ := doublestar.Match(pattern, rel+"/\x00")
	return ok
}
