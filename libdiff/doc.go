// Package libdiff computes structural differences between values and
// applies them.
//
// # Usage
//
//	// Compute the changes turning from into to
//	changes := libdiff.Diff(from, to)
//
//	// Apply them
//	err := libdiff.Apply(&doc, changes)
//
//	// Undo them
//	err = libdiff.Apply(&doc, libdiff.Reverse(changes))
//
// Array elements and object keys are aligned with diffmatchpatch rune diffs
// over summaries of the elements. Long strings which mostly agree are
// described by a diffmatchpatch patch text instead of a replacement.
//
// Changes are ordered: each change's path is valid in the document produced
// by applying the changes before it.
//
// # Related Packages
//
//   - github.com/signadot/jval/value - Value representation
//   - github.com/signadot/jval/patch - JSON patch and merge patch
package libdiff
