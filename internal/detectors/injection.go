package detectors

import (
	"regexp"

	"github.com/posturekit/posturekit/internal/types"
)

var (
	// String concatenation feeding a query-ish call. Concatenation is
	// common in safe code too, so hits stay heuristic.
	reSQLConcat = regexp.MustCompile(`(?i)\b(?:execute|query|sql)\w*[\s(].*(?:\+\s*["']|["']\s*\+)`)
	// A query call built directly from Sprintf can never be parameterized.
	reSQLSprintf = regexp.MustCompile(`(?i)\b(?:query|queryrow|exec|execute)\w*\s*\(\s*fmt\.Sprintf\s*\(`)
)

var sqlStringConcat = Descriptor{
	ID:         "sql_string_concat",
	Category:   types.CatInjection,
	Severity:   types.SevHigh,
	Confidence: types.ConfHeuristic,
	ControlID:  "DM-11",
	Pattern:    reSQLConcat,
	Suppress:   suppressTestPath,
}

var sqlSprintf = Descriptor{
	ID:         "sql_sprintf",
	Category:   types.CatInjection,
	Severity:   types.SevHigh,
	Confidence: types.ConfDefinite,
	ControlID:  "DM-11",
	Pattern:    reSQLSprintf,
	Suppress:   suppressTestPath,
}
