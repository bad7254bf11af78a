// Package format names the document formats the cram tool reads and
// writes: cram itself, JSON and YAML.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	out := "doc" + f.Suffix()
//
// # Related Packages
//
//   - github.com/signadot/cram/cram - The binary format
//   - github.com/signadot/cram/encode - Text rendering of values
package format
