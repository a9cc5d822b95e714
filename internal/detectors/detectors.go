package detectors

import (
	"bufio"
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/posturekit/posturekit/internal/types"
)

// SuppressFunc decides whether a raw pattern hit should be discarded.
// Suppressed hits are dropped entirely, never down-weighted.
type SuppressFunc func(path, line, match string, data []byte) bool

// Descriptor is one registered detector: a pattern plus the metadata
// needed to turn its hits into assessment input. Descriptors are static
// and individually testable.
type Descriptor struct {
	ID         string
	Category   types.Category
	Severity   types.Severity
	Confidence types.Confidence
	ControlID  string
	Pattern    *regexp.Regexp
	Suppress   SuppressFunc

	// MaskSnippet marks detectors whose matched value is credential
	// material; their snippets are masked before being stored.
	MaskSnippet bool
}

var all = []Descriptor{
	awsAccessKey, privateKeyBlock, apiKeyAssignment, passwordAssignment,
	basicAuthCredentials, weakPasswordPolicy,
	weakCipher, weakHash,
	tlsVerifyDisabled, plaintextURL,
	sqlStringConcat, sqlSprintf,
	unloggedAuthPath,
}

// All returns every registered descriptor in stable order.
func All() []Descriptor {
	out := make([]Descriptor, len(all))
	copy(out, all)
	return out
}

// IDs returns the registered detector IDs in registration order.
func IDs() []string {
	ids := make([]string, len(all))
	for i, d := range all {
		ids[i] = d.ID
	}
	return ids
}

// ByID looks up a descriptor by its ID.
func ByID(id string) (Descriptor, bool) {
	for _, d := range all {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Run applies one descriptor to file content, line by line.
func Run(d Descriptor, path string, data []byte) []types.Match {
	var out []types.Match
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 512*1024)
	line := 0
	for sc.Scan() {
		line++
		txt := sc.Text()
		m := d.Pattern.FindStringSubmatch(txt)
		if m == nil {
			continue
		}
		matched := m[0]
		if len(m) > 1 && m[1] != "" {
			matched = m[1]
		}
		if d.Suppress != nil && d.Suppress(path, txt, matched, data) {
			continue
		}
		out = append(out, types.Match{
			Detector:   d.ID,
			Category:   d.Category,
			Severity:   d.Severity,
			Path:       path,
			Line:       line,
			Snippet:    snippet(d, txt, matched),
			Confidence: d.Confidence,
			ControlID:  d.ControlID,
		})
	}
	return out
}

// RunAll applies every registered descriptor and dedupes overlapping hits.
func RunAll(path string, data []byte) []types.Match {
	var out []types.Match
	for _, d := range all {
		out = append(out, Run(d, path, data)...)
	}
	return dedupe(out)
}

func dedupe(ms []types.Match) []types.Match {
	seen := make(map[string]bool, len(ms))
	var result []types.Match
	for _, m := range ms {
		key := m.Path + "|" + m.Detector + "|" + strconv.Itoa(m.Line)
		if !seen[key] {
			seen[key] = true
			result = append(result, m)
		}
	}
	return result
}

// snippet builds the stored evidence line. Secret values never survive in
// full: only a short prefix of the match is kept.
func snippet(d Descriptor, line, matched string) string {
	if d.MaskSnippet {
		return maskValue(matched)
	}
	s := strings.TrimSpace(line)
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

func maskValue(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "…" + s[len(s)-4:]
}
