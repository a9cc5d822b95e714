package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/posturekit/posturekit/internal/audit"
	"github.com/posturekit/posturekit/internal/types"
)

// maxEvidenceRefs caps how many file:line references one assessment
// carries; the remainder is summarized.
const maxEvidenceRefs = 10

var gapText = map[types.Category]string{
	types.CatSecrets:   "Hardcoded secrets present in source code",
	types.CatCrypto:    "Weak cryptographic algorithms in use",
	types.CatTransport: "Data transmitted without transport encryption",
	types.CatInjection: "SQL queries built from unsanitized string input",
	types.CatAuth:      "Weak or hardcoded authentication mechanisms in use",
	types.CatAuthLog:   "Authentication events are not logged",
}

// Apply folds scan matches into the assessment store. Each control with
// at least one match is assessed: non_compliant when any match is
// definite, partial when all matches are heuristic. Controls without
// matches are left untouched, so manual assessments survive a clean scan.
func Apply(a *audit.Audit, matches []types.Match) error {
	byControl := map[string][]types.Match{}
	for _, m := range matches {
		byControl[m.ControlID] = append(byControl[m.ControlID], m)
	}

	ids := make([]string, 0, len(byControl))
	for id := range byControl {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		ms := byControl[id]
		status := audit.StatusPartial
		for _, m := range ms {
			if m.Confidence == types.ConfDefinite {
				status = audit.StatusNonCompliant
				break
			}
		}
		if err := a.Assess(id, status, strings.Join(evidenceRefs(ms), "; "), gapsFor(ms)); err != nil {
			return err
		}
	}
	return nil
}

// evidenceRefs renders file:line references in match order, deduplicated,
// capped at maxEvidenceRefs with a summary entry for the rest.
func evidenceRefs(ms []types.Match) []string {
	var refs []string
	seen := map[string]bool{}
	for _, m := range ms {
		ref := fmt.Sprintf("%s:%d", m.Path, m.Line)
		if seen[ref] {
			continue
		}
		seen[ref] = true
		refs = append(refs, ref)
	}
	if len(refs) > maxEvidenceRefs {
		extra := len(refs) - maxEvidenceRefs
		refs = append(refs[:maxEvidenceRefs], fmt.Sprintf("(+%d more)", extra))
	}
	return refs
}

// gapsFor yields one gap per distinct category observed, sorted.
func gapsFor(ms []types.Match) []string {
	seen := map[types.Category]bool{}
	var gaps []string
	for _, m := range ms {
		if seen[m.Category] {
			continue
		}
		seen[m.Category] = true
		if txt, ok := gapText[m.Category]; ok {
			gaps = append(gaps, txt)
		}
	}
	sort.Strings(gaps)
	return gaps
}
