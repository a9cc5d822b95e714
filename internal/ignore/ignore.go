// Package ignore matches paths against a repo-local .posturekitignore
// file: one pattern per line, gitignore-flavored (directory suffix slash,
// basename globs, exact paths). Comments and blank lines are skipped.
package ignore

import (
	"bufio"
	"os"
	"path"
	"strings"
)

// Matcher holds the parsed ignore patterns. The zero value matches
// nothing.
type Matcher struct {
	dirs  []string
	globs []string
	exact []string
}

// Load parses an ignore file. A missing file yields an empty matcher and
// the underlying error, so callers can ignore it.
func Load(p string) (Matcher, error) {
	var m Matcher
	f, err := os.Open(p)
	if err != nil {
		return m, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch {
		case strings.HasSuffix(line, "/"):
			m.dirs = append(m.dirs, strings.TrimSuffix(line, "/"))
		case strings.ContainsAny(line, "*?["):
			m.globs = append(m.globs, line)
		default:
			m.exact = append(m.exact, line)
		}
	}
	return m, sc.Err()
}

// Match reports whether a slash-separated relative path is ignored.
func (m Matcher) Match(rel string) bool {
	rel = strings.ReplaceAll(rel, "\\", "/")
	base := path.Base(rel)
	for _, d := range m.dirs {
		if rel == d || strings.HasPrefix(rel, d+"/") || strings.Contains(rel, "/"+d+"/") {
			return true
		}
	}
	for _, g := range m.globs {
		if ok, _ := path.Match(g, base); ok {
			return true
		}
		if ok, _ := path.Match(g, rel); ok {
			return true
		}
	}
	for _, e := range m.exact {
		if rel == e || base == e {
			return true
		}
	}
	return false
}
