// Package abstream provides synchronous, positionable cursors for reading and
// writing bytes, integers and floats over in-memory byte slices.
//
// # Reading
//
// A ReadStream wraps an existing byte slice:
//
//	rs := abstream.NewReadStream(data)
//	rs.LittleEndian = true
//	n, err := rs.ReadUint16()
//
// Reads past the end of the data return ErrShortRead and leave the offset
// unchanged.
//
// # Writing
//
// A WriteStream owns a backing buffer which grows as values are written:
//
//	ws := abstream.NewWriteStream(0, 0) // default initial and maximum size
//	ws.LittleEndian = true
//	err := ws.WriteUint32(0x01726359)
//	out := ws.Bytes()
//
// The buffer grows to the next power of two (never below
// DefaultInitialSize) and never beyond the maximum size given at
// construction. A write that cannot fit returns an error wrapping ErrMaxSize.
//
// # Byte Order
//
// Both cursors default to big-endian, matching network order. Set
// LittleEndian to switch every multi-byte accessor.
//
// # Thread Safety
//
// Streams are not safe for concurrent use.
package abstream
