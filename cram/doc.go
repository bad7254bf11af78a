// Package cram encodes JSON-compatible value trees into a compact binary
// document and back.
//
// # Overview
//
// cram stores every distinct string once, in a string table, and every
// distinct set of mapping keys (a schema) once, in a schema table. The
// object graph that follows refers to both by index, and a mapping is
// written as its schema index followed by its values in sorted key order.
// Documents holding many mappings of the same shape therefore shrink the
// most. No general compression is applied; pipe the output through a
// compressor if that is wanted.
//
//	data, err := cram.Encode(v)
//	v, err := cram.Decode(data)
//
// Keys are sorted by UTF-16 code units. Decoded mappings list their keys in
// that order, whatever the order of the encoded mapping. Strings holding
// ill-formed UTF-8 are stored with each bad run replaced by U+FFFD.
//
// Decoding limits nesting to DefaultMaxDecodeDepth unless WithMaxDepth says
// otherwise.
//
// # Document Layout
//
// All multi-byte numbers are little-endian. Table counts, lengths and
// indices use a VaryLengthUint: 7 bits per byte, least significant group
// first, with 0x80 set on every byte except the last.
//
//   - Header: 0x59 0x63 0x72, then the version byte (1).
//   - String table: VaryLengthUint count, then per string a VaryLengthUint
//     UTF-8 byte length and the bytes.
//   - Schema table: VaryLengthUint count, then per schema a VaryLengthUint
//     key count and one VaryLengthUint string index per key.
//   - Object graph: exactly one value.
//
// # Object Graph
//
// The lead byte of each value determines its type:
//
//	00-7f  integer 0..127
//	80-8f  mapping, schema index 0..15
//	90-9f  array of 0..15 elements
//	a0-bf  string index 0..31
//	c0     null
//	c1     undefined
//	c2     false
//	c3     true
//	c7     array, uint8 length + 16
//	c8     mapping, uint8 schema index + 16
//	ca     float32
//	cb     float64
//	cc-ce  uint8, uint16, uint32
//	d0-d2  int8, int16, int32
//	d9     string, uint8 index + 32
//	da     string, uint16 index + 288
//	db     string, uint32 index + 65824
//	dc     array, uint16 length + 272
//	dd     array, uint32 length + 65808
//	de     mapping, uint16 schema index + 272
//	df     mapping, uint32 schema index + 65808
//	e0-ff  integer -32..-1
//
// Lead bytes c4-c6, c9, cf and d3-d8 are reserved and decode to
// ErrUnsupportedType.
//
// The encoder always picks the narrowest form. Integers outside the int32
// and uint32 ranges, and non-integral numbers, are written as float32 when
// that is exact and as float64 otherwise. Integral floats are written as
// integers and so decode as value.IntType.
//
// # Errors
//
// Every failure aborts the whole call and no partial result is returned.
// Errors wrap one of ErrFormat, ErrUnsupportedType, ErrIndexRange,
// ErrTruncated, ErrResourceExhausted, ErrInvalidValue or ErrDepthExceeded.
//
// # Thread Safety
//
// Encode and Decode keep all state in a per-call Writer or Reader and may
// be called from any number of goroutines.
package cram
