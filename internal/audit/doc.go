// Package audit holds the assessment state of one audit run: the
// per-control compliance records, the scoring calculator, the finding
// generator and the report data contract consumed by renderers.
package audit
