package abstream

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ReadStream is a read cursor over a byte slice.
type ReadStream struct {
	data []byte
	off  int

	LittleEndian bool
}

func NewReadStream(data []byte) *ReadStream {
	return &ReadStream{data: data}
}

func (r *ReadStream) order() binary.ByteOrder {
	if r.LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Offset returns the current read position.
func (r *ReadStream) Offset() int { return r.off }

// Len returns the total number of bytes in the underlying data.
func (r *ReadStream) Len() int { return len(r.data) }

// Remaining returns the number of bytes after the current position.
func (r *ReadStream) Remaining() int { return len(r.data) - r.off }

func (r *ReadStream) EOF() bool { return r.off >= len(r.data) }

// Seek moves the cursor to an absolute offset in [0, Len()].
func (r *ReadStream) Seek(off int) error {
	if off < 0 || off > len(r.data) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrSeek, off, len(r.data))
	}
	r.off = off
	return nil
}

func (r *ReadStream) take(n int) ([]byte, error) {
	if n > len(r.data)-r.off {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortRead, n, r.off, len(r.data)-r.off)
	}
	p := r.data[r.off : r.off+n]
	r.off += n
	return p, nil
}

// ReadByte implements io.ByteReader.
func (r *ReadStream) ReadByte() (byte, error) {
	if r.off >= len(r.data) {
		return 0, fmt.Errorf("%w: need 1 byte at offset %d", ErrShortRead, r.off)
	}
	b := r.data[r.off]
	r.off++
	return b, nil
}

func (r *ReadStream) ReadUint8() (uint8, error) {
	return r.ReadByte()
}

func (r *ReadStream) ReadInt8() (int8, error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func (r *ReadStream) ReadUint16() (uint16, error) {
	p, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return r.order().Uint16(p), nil
}

func (r *ReadStream) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

func (r *ReadStream) ReadUint32() (uint32, error) {
	p, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return r.order().Uint32(p), nil
}

func (r *ReadStream) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

func (r *ReadStream) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

func (r *ReadStream) ReadFloat64() (float64, error) {
	p, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(r.order().Uint64(p)), nil
}

// ReadBytes returns the next n bytes, or everything up to the end of the
// data if fewer remain or n < 0. The result aliases the underlying data.
func (r *ReadStream) ReadBytes(n int) []byte {
	end := r.endOffset(n)
	p := r.data[r.off:end]
	r.off = end
	return p
}

// ReadBytesTo returns the bytes up to and including the first occurrence of
// sentinel, reading at most max bytes (max < 0 means no limit). If sentinel
// does not occur, it reads to the limit.
func (r *ReadStream) ReadBytesTo(sentinel byte, max int) []byte {
	end := r.endOffset(max)
	search := r.off
	for search < end {
		search++
		if r.data[search-1] == sentinel {
			break
		}
	}
	return r.ReadBytes(search - r.off)
}

func (r *ReadStream) endOffset(n int) int {
	if n >= 0 && n < len(r.data)-r.off {
		return r.off + n
	}
	return len(r.data)
}
