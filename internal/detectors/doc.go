// Package detectors is the registered table of pattern detectors applied
// by the scan engine. Each detector maps its hits onto one catalog
// control and carries a suppression predicate for known noise sources.
package detectors
