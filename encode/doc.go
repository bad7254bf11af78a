// Package encode writes value trees in any of the formats named by package
// format.
//
// # Usage
//
//	// Indented JSON
//	err := encode.Encode(v, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
//	// Colored, for a terminal
//	err := encode.Encode(v, os.Stdout,
//	    encode.EncodeFormat(format.JSONFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
//	// Binary cram document
//	err := encode.Encode(v, w, encode.EncodeFormat(format.CramFormat))
//
// JSON output is strict by default: non-finite numbers and a root
// undefined fail with ErrEncoding, while undefined values inside arrays
// become null and undefined mapping values are left out. EncodeLenient
// writes NaN, Infinity, -Infinity and undefined instead.
//
// # Related Packages
//
//   - github.com/signadot/cram/value - Value trees
//   - github.com/signadot/cram/cram - Binary encoding
package encode
