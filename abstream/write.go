package abstream

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	DefaultInitialSize = 0x8000     // 32 KiB
	DefaultMaxSize     = 0x20000000 // 512 MiB
)

// WriteStream is a write cursor over a growable buffer.
type WriteStream struct {
	buf     []byte
	off     int
	n       int
	initial int
	max     int

	LittleEndian bool
}

// NewWriteStream returns an empty stream. Non-positive sizes select
// DefaultInitialSize and DefaultMaxSize. The buffer is allocated on the
// first write.
func NewWriteStream(initialSize, maxSize int) *WriteStream {
	if initialSize <= 0 {
		initialSize = DefaultInitialSize
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if initialSize > maxSize {
		initialSize = maxSize
	}
	return &WriteStream{initial: initialSize, max: maxSize}
}

func (w *WriteStream) order() binary.ByteOrder {
	if w.LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Len returns the number of bytes written, which is the high water mark of
// the cursor.
func (w *WriteStream) Len() int { return w.n }

func (w *WriteStream) Offset() int { return w.off }

// Cap returns the size of the backing buffer.
func (w *WriteStream) Cap() int { return len(w.buf) }

// MaxSize returns the maximum size the buffer may grow to.
func (w *WriteStream) MaxSize() int { return w.max }

// Seek moves the cursor to an absolute offset in [0, Len()].
func (w *WriteStream) Seek(off int) error {
	if off < 0 || off > w.n {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrSeek, off, w.n)
	}
	w.off = off
	return nil
}

// Bytes returns the written bytes. The result aliases the buffer until the
// next write.
func (w *WriteStream) Bytes() []byte {
	return w.buf[:w.n]
}

// Allocate ensures the buffer holds at least size bytes.
func (w *WriteStream) Allocate(size int) error {
	have := len(w.buf)
	if size <= have {
		return nil
	}
	if size > w.max {
		return fmt.Errorf("%w: %d bytes requested, limit is %d", ErrMaxSize, size, w.max)
	}
	grow := max(have, w.initial)
	for grow < size {
		grow *= 2
	}
	grow = min(grow, w.max)
	buf := make([]byte, grow)
	copy(buf, w.buf[:w.n])
	w.buf = buf
	return nil
}

func (w *WriteStream) advance(n int) ([]byte, error) {
	start := w.off
	if err := w.Allocate(start + n); err != nil {
		return nil, err
	}
	w.off += n
	if w.off > w.n {
		w.n = w.off
	}
	return w.buf[start:w.off], nil
}

// WriteByte implements io.ByteWriter.
func (w *WriteStream) WriteByte(b byte) error {
	p, err := w.advance(1)
	if err != nil {
		return err
	}
	p[0] = b
	return nil
}

// Write implements io.Writer. It writes all of p or nothing.
func (w *WriteStream) Write(p []byte) (int, error) {
	if err := w.WriteBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *WriteStream) WriteBytes(src []byte) error {
	p, err := w.advance(len(src))
	if err != nil {
		return err
	}
	copy(p, src)
	return nil
}

func (w *WriteStream) WriteUint8(v uint8) error {
	return w.WriteByte(v)
}

func (w *WriteStream) WriteInt8(v int8) error {
	return w.WriteByte(uint8(v))
}

func (w *WriteStream) WriteUint16(v uint16) error {
	p, err := w.advance(2)
	if err != nil {
		return err
	}
	w.order().PutUint16(p, v)
	return nil
}

func (w *WriteStream) WriteInt16(v int16) error {
	return w.WriteUint16(uint16(v))
}

func (w *WriteStream) WriteUint32(v uint32) error {
	p, err := w.advance(4)
	if err != nil {
		return err
	}
	w.order().PutUint32(p, v)
	return nil
}

func (w *WriteStream) WriteInt32(v int32) error {
	return w.WriteUint32(uint32(v))
}

func (w *WriteStream) WriteFloat32(v float32) error {
	return w.WriteUint32(math.Float32bits(v))
}

func (w *WriteStream) WriteFloat64(v float64) error {
	p, err := w.advance(8)
	if err != nil {
		return err
	}
	w.order().PutUint64(p, math.Float64bits(v))
	return nil
}
