package audit

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Two compliant plus one not-applicable control scores 100.0, not 66.7:
// N/A leaves the denominator entirely.
func TestDomainScoreExcludesNotApplicable(t *testing.T) {
	a := New(testCatalog(t), Scope{})
	require.NoError(t, a.Assess("TA-01", StatusCompliant, "", nil))
	require.NoError(t, a.Assess("TA-02", StatusCompliant, "", nil))
	require.NoError(t, a.Assess("TA-03", StatusNotApplicable, "", nil))

	s := a.DomainScore("Alpha")
	require.False(t, s.Insufficient())
	require.Equal(t, 100.0, s.Value())
	require.Equal(t, 2, s.Assessed)
}

// One partial and one non-compliant control average to 25.0.
func TestDomainScorePartialMix(t *testing.T) {
	a := New(testCatalog(t), Scope{})
	require.NoError(t, a.Assess("TB-01", StatusPartial, "", nil))
	require.NoError(t, a.Assess("TB-02", StatusNonCompliant, "", nil))

	s := a.DomainScore("Beta")
	require.Equal(t, 25.0, s.Value())
}

// A domain with nothing assessed reports insufficient data, and computing
// the overall score does not panic or error.
func TestInsufficientData(t *testing.T) {
	a := New(testCatalog(t), Scope{})
	require.NoError(t, a.Assess("TA-01", StatusCompliant, "", nil))

	gamma := a.DomainScore("Gamma")
	require.True(t, gamma.Insufficient())

	overall := a.OverallScore()
	require.False(t, overall.Insufficient())
	require.Equal(t, 100.0, overall.Value())

	// fully empty audit: overall itself is insufficient, never zero
	empty := New(testCatalog(t), Scope{})
	require.True(t, empty.OverallScore().Insufficient())
}

func TestNotAssessedCountsAsZero(t *testing.T) {
	a := New(testCatalog(t), Scope{})
	require.NoError(t, a.Assess("TA-01", StatusCompliant, "", nil))
	require.NoError(t, a.Assess("TA-02", StatusNotAssessed, "", nil))

	s := a.DomainScore("Alpha")
	require.Equal(t, 50.0, s.Value())
	require.Equal(t, 2, s.Assessed)
}

// Property: over random assessment sets, N/A controls never enter any
// denominator, and the overall score equals a direct flat recomputation
// independent of domain grouping.
func TestScoreProperties(t *testing.T) {
	cat := testCatalog(t)
	ids := make([]string, 0, cat.Len())
	for _, ctl := range cat.Controls() {
		ids = append(ids, ctl.ID)
	}
	statuses := []Status{StatusCompliant, StatusPartial, StatusNonCompliant, StatusNotApplicable, StatusNotAssessed}

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		a := New(cat, Scope{})
		want := map[string]Status{}
		for _, id := range ids {
			if rng.Intn(4) == 0 {
				continue // leave some controls unassessed entirely
			}
			st := statuses[rng.Intn(len(statuses))]
			require.NoError(t, a.Assess(id, st, "", nil))
			want[id] = st
		}

		// direct flat recomputation
		var sum float64
		var n int
		for _, st := range want {
			switch st {
			case StatusCompliant:
				sum += 100
				n++
			case StatusPartial:
				sum += 50
				n++
			case StatusNonCompliant, StatusNotAssessed:
				n++
			case StatusNotApplicable:
				// excluded from numerator and denominator
			}
		}

		got := a.OverallScore()
		require.Equal(t, n, got.Assessed, "trial %d", trial)
		if n > 0 {
			require.InDelta(t, sum/float64(n), got.Points, 1e-9, "trial %d", trial)
		} else {
			require.True(t, got.Insufficient())
		}

		// denominators across domains sum to the overall denominator
		domTotal := 0
		for _, d := range cat.Domains() {
			domTotal += a.DomainScore(d).Assessed
		}
		require.Equal(t, n, domTotal)
	}
}

// Moving one control non_compliant -> partial -> compliant never lowers
// the domain score, whatever the rest of the domain looks like.
func TestScoreMonotonicity(t *testing.T) {
	cat := testCatalog(t)
	statuses := []Status{StatusCompliant, StatusPartial, StatusNonCompliant, StatusNotApplicable, StatusNotAssessed}
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 100; trial++ {
		others := map[string]Status{
			"TA-02": statuses[rng.Intn(len(statuses))],
			"TA-03": statuses[rng.Intn(len(statuses))],
		}
		prev := -1.0
		for _, st := range []Status{StatusNonCompliant, StatusPartial, StatusCompliant} {
			a := New(cat, Scope{})
			require.NoError(t, a.Assess("TA-01", st, "", nil))
			for id, ost := range others {
				require.NoError(t, a.Assess(id, ost, "", nil))
			}
			s := a.DomainScore("Alpha")
			require.False(t, s.Insufficient())
			require.GreaterOrEqual(t, s.Points, prev, "trial %d status %s", trial, st)
			prev = s.Points
		}
	}
}

func TestScoreJSON(t *testing.T) {
	b, err := json.Marshal(Score{Points: 83.333333, Assessed: 3})
	require.NoError(t, err)
	require.JSONEq(t, `{"score": 83.3, "assessed_controls": 3}`, string(b))

	b, err = json.Marshal(Score{})
	require.NoError(t, err)
	require.JSONEq(t, `{"insufficient_data": true}`, string(b))
}
