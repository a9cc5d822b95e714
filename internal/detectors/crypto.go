package detectors

import (
	"regexp"

	"github.com/posturekit/posturekit/internal/types"
)

var (
	reWeakCipher = regexp.MustCompile(`(?i)\b(?:rc4|arcfour|3des)\b\s*[.(]|\bcrypto/des\b|\bcrypto/rc4\b|\bDES\.new\b|\bCipher\.getInstance\(\s*["'](?:DES|RC4|DESede)`)
	// MD5/SHA-1 also show up in non-security checksum code, so hits stay
	// heuristic.
	reWeakHash = regexp.MustCompile(`(?i)\b(?:md5|sha1)\s*\(|\bcrypto/md5\b|\bcrypto/sha1\b|\bMessageDigest\.getInstance\(\s*["'](?:MD5|SHA-?1)`)
)

var weakCipher = Descriptor{
	ID:         "weak_cipher",
	Category:   types.CatCrypto,
	Severity:   types.SevHigh,
	Confidence: types.ConfDefinite,
	ControlID:  "CR-04",
	Pattern:    reWeakCipher,
	Suppress:   suppressTestPath,
}

var weakHash = Descriptor{
	ID:         "weak_hash",
	Category:   types.CatCrypto,
	Severity:   types.SevMed,
	Confidence: types.ConfHeuristic,
	ControlID:  "CR-04",
	Pattern:    reWeakHash,
	Suppress:   suppressTestPath,
}
