package detectors

import (
	"regexp"
	"strings"

	"github.com/posturekit/posturekit/internal/types"
)

var (
	reTLSVerifyOff = regexp.MustCompile(`(?i)InsecureSkipVerify\s*:\s*true|\bverify\s*=\s*False\b|CURLOPT_SSL_VERIFYPEER\s*(?:,|=>|=)\s*(?:0|false)|rejectUnauthorized\s*:\s*false`)
	rePlaintextURL = regexp.MustCompile(`\bhttp://([A-Za-z0-9][A-Za-z0-9.-]*)`)
)

var tlsVerifyDisabled = Descriptor{
	ID:         "tls_verify_disabled",
	Category:   types.CatTransport,
	Severity:   types.SevHigh,
	Confidence: types.ConfDefinite,
	ControlID:  "DM-10",
	Pattern:    reTLSVerifyOff,
	Suppress:   suppressTestPath,
}

var plaintextURL = Descriptor{
	ID:         "plaintext_url",
	Category:   types.CatTransport,
	Severity:   types.SevMed,
	Confidence: types.ConfHeuristic,
	ControlID:  "DM-10",
	Pattern:    rePlaintextURL,
	Suppress:   suppressPlaintextURL,
}

// Loopback, documentation hosts and XML namespace URIs are not transport
// weaknesses.
func suppressPlaintextURL(path, line, match string, data []byte) bool {
	if isTestPath(path) {
		return true
	}
	if strings.Contains(line, "xmlns") || strings.Contains(line, "DOCTYPE") {
		return true
	}
	host := strings.TrimPrefix(match, "http://")
	for _, benign := range []string{
		"localhost", "127.0.0.1", "0.0.0.0",
		"example.com", "example.org", "example.net",
		"www.w3.org", "schema.org", "schemas.xmlsoap.org",
	} {
		if host == benign || strings.HasPrefix(host, benign+".") || strings.HasPrefix(host, benign+":") {
			return true
		}
	}
	return strings.HasSuffix(host, ".local") || strings.HasSuffix(host, ".test")
}
