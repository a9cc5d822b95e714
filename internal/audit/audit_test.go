package audit

import (
	"testing"

	"github.com/posturekit/posturekit/internal/catalog"
	"github.com/stretchr/testify/require"
)

const testCatalogYAML = `
controls:
  - id: TA-01
    domain: Alpha
    name: Alpha One
    description: First alpha control.
    risk_class: critical
  - id: TA-02
    domain: Alpha
    name: Alpha Two
    description: Second alpha control.
    risk_class: high
  - id: TA-03
    domain: Alpha
    name: Alpha Three
    description: Third alpha control.
  - id: TB-01
    domain: Beta
    name: Beta One
    description: First beta control.
    risk_class: high
  - id: TB-02
    domain: Beta
    name: Beta Two
    description: Second beta control.
  - id: TC-01
    domain: Gamma
    name: Gamma One
    description: First gamma control.
`

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(testCatalogYAML))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{StatusCompliant, StatusPartial, StatusNonCompliant, StatusNotApplicable, StatusNotAssessed} {
		got, err := ParseStatus(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	_, err := ParseStatus("mostly_fine")
	var inv *InvalidStatusError
	require.ErrorAs(t, err, &inv)
	require.Equal(t, "mostly_fine", inv.Value)
}

func TestAssessUnknownControl(t *testing.T) {
	a := New(testCatalog(t), Scope{SystemName: "t"})
	err := a.Assess("ZZ-99", StatusCompliant, "", nil)
	var unknown *UnknownControlError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "ZZ-99", unknown.ControlID)
	require.Empty(t, a.Records(), "store must be unchanged on rejection")
}

func TestAssessInvalidStatus(t *testing.T) {
	a := New(testCatalog(t), Scope{})
	err := a.Assess("TA-01", Status(42), "", nil)
	var inv *InvalidStatusError
	require.ErrorAs(t, err, &inv)
	require.Empty(t, a.Records())
}

func TestAssessOverwriteWins(t *testing.T) {
	a := New(testCatalog(t), Scope{})
	require.NoError(t, a.Assess("TA-01", StatusCompliant, "first pass", nil))
	require.NoError(t, a.Assess("TA-01", StatusNonCompliant, "re-assessed", []string{"gap"}))

	rec, ok := a.Record("TA-01")
	require.True(t, ok)
	require.Equal(t, StatusNonCompliant, rec.Status)
	require.Equal(t, "re-assessed", rec.Evidence)
	require.Len(t, a.Records(), 1)
}

func TestAssessCopiesGaps(t *testing.T) {
	a := New(testCatalog(t), Scope{})
	gaps := []string{"one"}
	require.NoError(t, a.Assess("TA-01", StatusPartial, "", gaps))
	gaps[0] = "mutated"
	rec, _ := a.Record("TA-01")
	require.Equal(t, []string{"one"}, rec.Gaps)
}

func TestRecordsSorted(t *testing.T) {
	a := New(testCatalog(t), Scope{})
	for _, id := range []string{"TB-01", "TA-02", "TC-01", "TA-01"} {
		require.NoError(t, a.Assess(id, StatusCompliant, "", nil))
	}
	recs := a.Records()
	require.Len(t, recs, 4)
	for i := 1; i < len(recs); i++ {
		require.Less(t, recs[i-1].ControlID, recs[i].ControlID)
	}
}

func TestUnknownControlErrorMessage(t *testing.T) {
	err := error(&UnknownControlError{ControlID: "XX-01"})
	require.Contains(t, err.Error(), "XX-01")
}
