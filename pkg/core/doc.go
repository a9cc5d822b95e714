// Package core provides a small, stable facade over posturekit's
// internal engine and assessment store for external integrations. It
// deliberately re-exports a narrow API surface so third-party tools can
// depend on a stable import path without exposing internal packages.
//
// Example:
//
//	rep, res, err := core.Assess(ctx, core.Config{Root: "."}, nil, core.Scope{SystemName: "api"})
//	if err != nil { /* handle */ }
//	fmt.Printf("scanned %d files\n", res.FilesScanned)
//	_ = core.MarshalReport(os.Stdout, rep)
package core
