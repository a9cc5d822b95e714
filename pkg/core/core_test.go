package core

import (
	"context"
	"testing"
)

func TestAssess_Smoke(t *testing.T) {
	rep, res, err := Assess(context.Background(), Config{Root: t.TempDir()}, nil, Scope{SystemName: "smoke"})
	if err != nil {
		t.Fatalf("Assess error: %v", err)
	}
	if res.FilesScanned != 0 {
		t.Fatalf("expected empty tree, scanned %d files", res.FilesScanned)
	}
	if !rep.Scores.Overall.Insufficient() {
		t.Fatalf("expected insufficient data for empty tree, got %+v", rep.Scores.Overall)
	}
	if rep.Scope.SystemName != "smoke" {
		t.Fatalf("scope not carried: %+v", rep.Scope)
	}
	ids := DetectorIDs()
	if len(ids) == 0 {
		t.Fatal("expected non-empty detector IDs")
	}
}
