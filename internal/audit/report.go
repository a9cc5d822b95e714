package audit

import "time"

// Scores bundles the overall score with per-domain scores. Every catalog
// domain appears, including those with no assessed controls.
type Scores struct {
	Overall  Score            `json:"overall"`
	ByDomain map[string]Score `json:"by_domain"`
}

// Report is the single source of truth handed to renderers. Renderers
// never recompute scores.
type Report struct {
	Scope       Scope        `json:"scope"`
	GeneratedAt time.Time    `json:"generated_at"`
	Scores      Scores       `json:"scores"`
	Assessments []Assessment `json:"assessments"`
	Findings    []Finding    `json:"findings"`
	Warnings    []string     `json:"warnings,omitempty"`
}

// Report assembles the report data contract from the current store.
func (a *Audit) Report(warnings []string) Report {
	byDomain := make(map[string]Score, len(a.cat.Domains()))
	for _, d := range a.cat.Domains() {
		byDomain[d] = a.DomainScore(d)
	}
	findings := a.Findings()
	if findings == nil {
		findings = []Finding{}
	}
	return Report{
		Scope:       a.scope,
		GeneratedAt: a.now(),
		Scores: Scores{
			Overall:  a.OverallScore(),
			ByDomain: byDomain,
		},
		Assessments: a.Records(),
		Findings:    findings,
		Warnings:    warnings,
	}
}
