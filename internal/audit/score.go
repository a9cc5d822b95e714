package audit

import (
	"encoding/json"
	"math"
)

// Score is an averaged compliance score over a set of assessed controls.
// A score with zero assessed controls carries no information and is
// reported as insufficient data, never as 0.0.
type Score struct {
	Points   float64
	Assessed int
}

// Insufficient reports whether no assessed, applicable control backs the
// score.
func (s Score) Insufficient() bool { return s.Assessed == 0 }

// Value returns the score rounded to one decimal place.
func (s Score) Value() float64 {
	return math.Round(s.Points*10) / 10
}

// MarshalJSON encodes a score either as its value or as an explicit
// insufficient-data marker, so consumers cannot mistake one for a zero.
func (s Score) MarshalJSON() ([]byte, error) {
	if s.Insufficient() {
		return json.Marshal(map[string]bool{"insufficient_data": true})
	}
	return json.Marshal(map[string]interface{}{
		"score":             s.Value(),
		"assessed_controls": s.Assessed,
	})
}

func scoreOf(recs []Assessment) Score {
	var sum float64
	var n int
	for _, rec := range recs {
		pts, counted := rec.Status.points()
		if !counted {
			continue
		}
		sum += pts
		n++
	}
	if n == 0 {
		return Score{}
	}
	return Score{Points: sum / float64(n), Assessed: n}
}

// DomainScore averages the assessed, applicable controls of one domain.
func (a *Audit) DomainScore(domain string) Score {
	var recs []Assessment
	for _, ctl := range a.cat.Domain(domain) {
		if rec, ok := a.Record(ctl.ID); ok {
			recs = append(recs, rec)
		}
	}
	return scoreOf(recs)
}

// OverallScore averages all assessed, applicable controls as a flat set;
// domains are not weighted.
func (a *Audit) OverallScore() Score {
	return scoreOf(a.Records())
}
