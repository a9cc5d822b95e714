// Package posturekit provides the command-line interface for the
// posturekit tool. It configures subcommands (scan, assess, catalog,
// detectors, test-detector), parses flags, and executes the selected
// command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/posturekit/posturekit/cmd/posturekit"
//	func main() { posturekit.Execute() }
package posturekit
