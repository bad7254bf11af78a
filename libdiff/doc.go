// Package libdiff computes structural differences between value trees.
//
// # Usage
//
//	changes := libdiff.Diff(oldValue, newValue)
//	for _, c := range changes {
//	    fmt.Println(c)
//	}
//
//	// As an RFC 6902 JSON Patch
//	patch, err := libdiff.Patch(changes)
//
// Mappings are compared key by key regardless of key order. Arrays are
// aligned with a sequence diff so that an inserted or removed element does
// not show up as a change to every element after it. Numbers compare by
// value, so an Int and a Float holding the same number are not a change.
//
// Changes carry JSON Pointer paths and are ordered so that applying them in
// sequence turns the old value into the new one.
//
// # Related Packages
//
//   - github.com/signadot/cram/mergeop - Applying JSON patches
package libdiff
