package detectors

import "strings"

var placeholderFragments = []string{
	"example", "changeme", "change_me", "change-me", "placeholder",
	"dummy", "sample", "your_", "your-", "<", "${", "{{", "%s",
	"xxxx", "redacted", "fixme", "todo",
}

// isPlaceholderValue recognizes values people write as stand-ins in docs
// and templates. Matches against such values are noise, not leaks.
func isPlaceholderValue(v string) bool {
	lower := strings.ToLower(v)
	for _, frag := range placeholderFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}

// isTestPath reports whether a path sits under a test or fixture tree.
func isTestPath(path string) bool {
	p := strings.ToLower(strings.ReplaceAll(path, "\\", "/"))
	if strings.Contains(p, "_test.") || strings.HasSuffix(p, ".spec.js") || strings.HasSuffix(p, ".spec.ts") {
		return true
	}
	for _, dir := range []string{"test/", "tests/", "testdata/", "fixtures/", "fixture/", "mocks/", "__tests__/", "spec/"} {
		if strings.HasPrefix(p, dir) || strings.Contains(p, "/"+dir) {
			return true
		}
	}
	return false
}

// suppressTestOrPlaceholder combines the two common suppressions used by
// the secret detectors.
func suppressTestOrPlaceholder(path, _ string, match string, _ []byte) bool {
	return isTestPath(path) || isPlaceholderValue(match)
}

// suppressTestPath drops hits inside test and fixture trees.
func suppressTestPath(path, _, _ string, _ []byte) bool {
	return isTestPath(path)
}
