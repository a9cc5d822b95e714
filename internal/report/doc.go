// Package report renders an assembled audit report as JSON, Markdown, or
// a terminal summary. Renderers only format; scores and findings arrive
// precomputed and are never recalculated here.
package report
