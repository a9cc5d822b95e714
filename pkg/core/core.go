package core

import (
	"context"

	"github.com/posturekit/posturekit/internal/audit"
	"github.com/posturekit/posturekit/internal/catalog"
	"github.com/posturekit/posturekit/internal/detectors"
	"github.com/posturekit/posturekit/internal/engine"
	"github.com/posturekit/posturekit/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type (
	Config     = engine.Config
	Result     = engine.Result
	Match      = types.Match
	Catalog    = catalog.Catalog
	Control    = catalog.Control
	Scope      = audit.Scope
	Assessment = audit.Assessment
	Status     = audit.Status
	Finding    = audit.Finding
	Report     = audit.Report
)

// Assess wires a scan and an assessment store together: it scans
// cfg.Root, folds the matches into a fresh audit over the given catalog,
// and returns the assembled report together with the raw scan result.
func Assess(ctx context.Context, cfg Config, cat *Catalog, scope Scope) (Report, Result, error) {
	if cat == nil {
		cat = catalog.Builtin()
	}
	a := audit.New(cat, scope)

	res, err := engine.Scan(ctx, cfg)
	if err != nil {
		return Report{}, res, err
	}
	if err := engine.Apply(a, res.Matches); err != nil {
		return Report{}, res, err
	}

	warnings := make([]string, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		warnings = append(warnings, w.Path+": "+w.Reason)
	}
	return a.Report(warnings), res, nil
}

// Scan runs the detectors without building an assessment, for callers
// that want raw matches.
func Scan(ctx context.Context, cfg Config) (Result, error) {
	return engine.Scan(ctx, cfg)
}

// BuiltinCatalog returns the embedded control catalog.
func BuiltinCatalog() *Catalog { return catalog.Builtin() }

// DetectorIDs returns the list of configured detector IDs.
// This is exposed for convenience to avoid importing internals directly.
func DetectorIDs() []string { return detectors.IDs() }
