package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/posturekit/posturekit/internal/audit"
	"github.com/posturekit/posturekit/internal/catalog"
	"github.com/posturekit/posturekit/internal/types"
)

func newAudit(t *testing.T) *audit.Audit {
	t.Helper()
	return audit.New(catalog.Builtin(), audit.Scope{SystemName: "demo"})
}

func match(control string, cat types.Category, conf types.Confidence, path string, line int) types.Match {
	return types.Match{
		Detector:   "test",
		Category:   cat,
		Severity:   types.SevHigh,
		Path:       path,
		Line:       line,
		Confidence: conf,
		ControlID:  control,
	}
}

func TestApplyDefiniteIsNonCompliant(t *testing.T) {
	a := newAudit(t)
	require.NoError(t, Apply(a, []types.Match{
		match("CR-02", types.CatSecrets, types.ConfHeuristic, "a.py", 3),
		match("CR-02", types.CatSecrets, types.ConfDefinite, "b.py", 9),
	}))

	rec, ok := a.Record("CR-02")
	require.True(t, ok)
	require.Equal(t, audit.StatusNonCompliant, rec.Status)
	require.Equal(t, "a.py:3; b.py:9", rec.Evidence)
	require.Equal(t, []string{"Hardcoded secrets present in source code"}, rec.Gaps)
}

func TestApplyHeuristicOnlyIsPartial(t *testing.T) {
	a := newAudit(t)
	require.NoError(t, Apply(a, []types.Match{
		match("CR-04", types.CatCrypto, types.ConfHeuristic, "hash.go", 12),
	}))

	rec, ok := a.Record("CR-04")
	require.True(t, ok)
	require.Equal(t, audit.StatusPartial, rec.Status)
}

func TestApplyEvidenceCap(t *testing.T) {
	a := newAudit(t)
	var ms []types.Match
	for i := 1; i <= 14; i++ {
		ms = append(ms, match("DM-10", types.CatTransport, types.ConfDefinite, fmt.Sprintf("f%02d.go", i), i))
	}
	require.NoError(t, Apply(a, ms))

	rec, _ := a.Record("DM-10")
	require.Contains(t, rec.Evidence, "f10.go:10")
	require.NotContains(t, rec.Evidence, "f11.go:11")
	require.Contains(t, rec.Evidence, "(+4 more)")
}

func TestApplyOneGapPerCategory(t *testing.T) {
	a := newAudit(t)
	require.NoError(t, Apply(a, []types.Match{
		match("DM-11", types.CatInjection, types.ConfHeuristic, "q.go", 1),
		match("DM-11", types.CatInjection, types.ConfHeuristic, "q.go", 7),
		match("DM-11", types.CatInjection, types.ConfDefinite, "r.go", 2),
	}))

	rec, _ := a.Record("DM-11")
	require.Equal(t, []string{"SQL queries built from unsanitized string input"}, rec.Gaps)
}

func TestApplyAuthCategory(t *testing.T) {
	a := newAudit(t)
	require.NoError(t, Apply(a, []types.Match{
		match("IAM-05", types.CatAuth, types.ConfDefinite, "client.go", 4),
	}))

	rec, ok := a.Record("IAM-05")
	require.True(t, ok)
	require.Equal(t, audit.StatusNonCompliant, rec.Status)
	require.Equal(t, []string{"Weak or hardcoded authentication mechanisms in use"}, rec.Gaps)
}

func TestApplyLeavesUnmatchedControlsAlone(t *testing.T) {
	a := newAudit(t)
	require.NoError(t, a.Assess("SM-01", audit.StatusCompliant, "reviewed logging config", nil))

	require.NoError(t, Apply(a, []types.Match{
		match("CR-02", types.CatSecrets, types.ConfDefinite, "a.py", 1),
	}))

	rec, ok := a.Record("SM-01")
	require.True(t, ok)
	require.Equal(t, audit.StatusCompliant, rec.Status)
}

func TestApplyOverridesManualOnMatch(t *testing.T) {
	a := newAudit(t)
	require.NoError(t, a.Assess("CR-02", audit.StatusCompliant, "vault in place", nil))

	require.NoError(t, Apply(a, []types.Match{
		match("CR-02", types.CatSecrets, types.ConfDefinite, "a.py", 1),
	}))

	rec, _ := a.Record("CR-02")
	require.Equal(t, audit.StatusNonCompliant, rec.Status)
}

func TestApplyUnknownControl(t *testing.T) {
	a := newAudit(t)
	err := Apply(a, []types.Match{
		match("ZZ-99", types.CatSecrets, types.ConfDefinite, "a.py", 1),
	})
	var uerr *audit.UnknownControlError
	require.ErrorAs(t, err, &uerr)
}
