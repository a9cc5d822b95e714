package audit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportContract(t *testing.T) {
	a := New(testCatalog(t), Scope{SystemName: "billing", Criticality: "high"})
	require.NoError(t, a.Assess("TA-01", StatusCompliant, "", nil))
	require.NoError(t, a.Assess("TB-01", StatusNonCompliant, "seen in scan", []string{"gap"}))

	rep := a.Report([]string{"src/huge.sql: skipped, exceeds size cap"})

	require.Equal(t, "billing", rep.Scope.SystemName)
	require.Len(t, rep.Scores.ByDomain, 3, "every catalog domain appears")
	require.True(t, rep.Scores.ByDomain["Gamma"].Insufficient())
	require.Equal(t, 50.0, rep.Scores.Overall.Value())
	require.Len(t, rep.Assessments, 2)
	require.Len(t, rep.Findings, 1)
	require.Len(t, rep.Warnings, 1)

	// wire shape consumed by renderers
	b, err := json.Marshal(rep)
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	for _, key := range []string{"scope", "generated_at", "scores", "assessments", "findings", "warnings"} {
		require.Contains(t, raw, key)
	}
}

func TestReportEmptyFindingsIsList(t *testing.T) {
	a := New(testCatalog(t), Scope{})
	b, err := json.Marshal(a.Report(nil))
	require.NoError(t, err)
	require.Contains(t, string(b), `"findings":[]`, "findings must encode as an empty list, not null")
}
