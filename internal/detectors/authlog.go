package detectors

import (
	"regexp"

	"github.com/posturekit/posturekit/internal/types"
)

var (
	reAuthFunc = regexp.MustCompile(`(?i)\b(?:func|def|function)\s+\w*(?:login|logout|authenticate|signin|sign_in|verify_?password|check_?credentials)\w*\s*\(`)
	reLogging  = regexp.MustCompile(`(?i)\b(?:log|logger|logging|slog|syslog|audit)\b\s*[.(]|console\.(?:log|warn|error)`)
)

// unloggedAuthPath flags authentication entry points defined in files that
// show no logging at all. It cannot see call graphs, so it stays a
// heuristic on file contents.
var unloggedAuthPath = Descriptor{
	ID:         "unlogged_auth_path",
	Category:   types.CatAuthLog,
	Severity:   types.SevMed,
	Confidence: types.ConfHeuristic,
	ControlID:  "SM-01",
	Pattern:    reAuthFunc,
	Suppress:   suppressLoggedAuth,
}

func suppressLoggedAuth(path, _, _ string, data []byte) bool {
	if isTestPath(path) {
		return true
	}
	return reLogging.Match(data)
}
