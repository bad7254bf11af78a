// Package mergeop applies patch documents to value trees.
//
// # Operations
//
// Each kind of patch is a Symbol, looked up by name:
//
//   - json-patch: an RFC 6902 JSON Patch, a list of add, remove, replace,
//     move, copy and test operations addressed by JSON Pointer
//   - merge-patch: an RFC 7386 JSON Merge Patch
//
// # Usage
//
//	patched, err := mergeop.Apply("json-patch", doc, patch)
//
// Documents pass through JSON on their way through an op, so undefined
// values are dropped, non-finite numbers are rejected and mapping keys of
// the result come back sorted.
//
// # Related Packages
//
//   - github.com/signadot/cram/libdiff - Producing JSON patches from diffs
package mergeop
