package detectors

import (
	"regexp"

	"github.com/posturekit/posturekit/internal/types"
)

var (
	reAWSAccessKey = regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`)
	rePrivateKey   = regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY-----`)
	// Broad assignment forms; the suppression predicate weeds out
	// placeholder values and fixtures.
	reAPIKeyAssign   = regexp.MustCompile(`(?i)\b(?:api[_-]?key|apikey|secret[_-]?key|access[_-]?token|auth[_-]?token|client[_-]?secret)\b["']?\s*[:=]\s*["']([A-Za-z0-9_\-./+]{16,})["']`)
	rePasswordAssign = regexp.MustCompile(`(?i)\b(?:password|passwd|pwd)\b["']?\s*[:=]\s*["']([^"']{4,})["']`)
)

var awsAccessKey = Descriptor{
	ID:          "aws_access_key",
	Category:    types.CatSecrets,
	Severity:    types.SevCritical,
	Confidence:  types.ConfDefinite,
	ControlID:   "CR-02",
	Pattern:     reAWSAccessKey,
	Suppress:    suppressTestOrPlaceholder,
	MaskSnippet: true,
}

var privateKeyBlock = Descriptor{
	ID:          "private_key_block",
	Category:    types.CatSecrets,
	Severity:    types.SevCritical,
	Confidence:  types.ConfDefinite,
	ControlID:   "CR-02",
	Pattern:     rePrivateKey,
	Suppress:    suppressTestPath,
	MaskSnippet: true,
}

var apiKeyAssignment = Descriptor{
	ID:          "api_key_assignment",
	Category:    types.CatSecrets,
	Severity:    types.SevHigh,
	Confidence:  types.ConfDefinite,
	ControlID:   "CR-02",
	Pattern:     reAPIKeyAssign,
	Suppress:    suppressTestOrPlaceholder,
	MaskSnippet: true,
}

var passwordAssignment = Descriptor{
	ID:          "password_assignment",
	Category:    types.CatSecrets,
	Severity:    types.SevMed,
	Confidence:  types.ConfHeuristic,
	ControlID:   "CR-02",
	Pattern:     rePasswordAssign,
	Suppress:    suppressTestOrPlaceholder,
	MaskSnippet: true,
}
