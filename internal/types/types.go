package types

// Severity is a coarse-grained risk level for a scan match.
type Severity string

const (
	SevLow      Severity = "low"
	SevMed      Severity = "medium"
	SevHigh     Severity = "high"
	SevCritical Severity = "critical"
)

// Confidence classifies how much a match can be trusted without a human
// looking at it.
type Confidence string

const (
	// ConfDefinite marks matches that are a problem on their face,
	// e.g. a live-format AWS access key ID.
	ConfDefinite Confidence = "definite"
	// ConfHeuristic marks matches that suggest a problem but can be noise,
	// e.g. string concatenation near a query call.
	ConfHeuristic Confidence = "heuristic"
)

// Category groups detectors by the class of weakness they look for.
type Category string

const (
	CatSecrets   Category = "hardcoded_secrets"
	CatCrypto    Category = "weak_cryptography"
	CatTransport Category = "transport_encryption"
	CatInjection Category = "injection"
	CatAuth      Category = "authentication"
	CatAuthLog   Category = "auth_logging"
)

// Match describes a single detector hit at a path and line. The snippet is
// truncated and secret values inside it are masked before it is stored.
type Match struct {
	Detector   string     `json:"detector"`
	Category   Category   `json:"category"`
	Severity   Severity   `json:"severity"`
	Path       string     `json:"path"`
	Line       int        `json:"line"`
	Snippet    string     `json:"snippet,omitempty"`
	Confidence Confidence `json:"confidence"`
	ControlID  string     `json:"control_id"`
}
