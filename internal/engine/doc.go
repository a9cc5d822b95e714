// Package engine walks a target tree, runs the detector registry over
// every eligible text file, and folds the resulting matches into an
// assessment store. Traversal skips binary content, oversized files,
// excluded directories, and anything matched by exclusion globs or a
// .posturekitignore file.
package engine
