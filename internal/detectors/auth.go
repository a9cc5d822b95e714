package detectors

import (
	"regexp"

	"github.com/posturekit/posturekit/internal/types"
)

var (
	reBasicAuth = regexp.MustCompile(`(?i)\bauthorization\b["']?\s*[:=,]\s*["']?basic\s+([A-Za-z0-9+/=]{8,})`)
	// A numeric minimum-length check of 7 or less against a password
	// variable. Cannot see the surrounding policy, so it stays heuristic.
	reWeakPasswordCheck = regexp.MustCompile(`(?i)\blen(?:gth)?\s*\(\s*\w*password\w*\s*\)\s*[<>]=?\s*[1-7](?:[^0-9]|$)|\bpassword\w*\.?length\b.*[<>]=?\s*[1-7](?:[^0-9]|$)`)
)

var basicAuthCredentials = Descriptor{
	ID:          "basic_auth_credentials",
	Category:    types.CatAuth,
	Severity:    types.SevHigh,
	Confidence:  types.ConfDefinite,
	ControlID:   "IAM-05",
	Pattern:     reBasicAuth,
	Suppress:    suppressTestOrPlaceholder,
	MaskSnippet: true,
}

var weakPasswordPolicy = Descriptor{
	ID:         "weak_password_policy",
	Category:   types.CatAuth,
	Severity:   types.SevMed,
	Confidence: types.ConfHeuristic,
	ControlID:  "IAM-05",
	Pattern:    reWeakPasswordCheck,
	Suppress:   suppressTestPath,
}
