package cram

import (
	"fmt"

	"github.com/signadot/cram/abstream"
)

// Header bytes.
const (
	Magic0 byte = 0x59
	Magic1 byte = 0x63
	Magic2 byte = 0x72

	Version byte = 1

	headerSize = 4
)

// Lead bytes of the object graph.
const (
	leadPosFixMax  byte = 0x7f
	leadFixMapping byte = 0x80
	leadFixArray   byte = 0x90
	leadFixString  byte = 0xa0
	leadNull       byte = 0xc0
	leadUndefined  byte = 0xc1
	leadFalse      byte = 0xc2
	leadTrue       byte = 0xc3
	leadArray8     byte = 0xc7
	leadMapping8   byte = 0xc8
	leadFloat32    byte = 0xca
	leadFloat64    byte = 0xcb
	leadUint8      byte = 0xcc
	leadUint16     byte = 0xcd
	leadUint32     byte = 0xce
	leadInt8       byte = 0xd0
	leadInt16      byte = 0xd1
	leadInt32      byte = 0xd2
	leadString8    byte = 0xd9
	leadString16   byte = 0xda
	leadString32   byte = 0xdb
	leadArray16    byte = 0xdc
	leadArray32    byte = 0xdd
	leadMapping16  byte = 0xde
	leadMapping32  byte = 0xdf
	leadNegFixMin  byte = 0xe0
)

// tier describes a biased tiered integer: values up to mask are stored in
// the low bits of the lead byte, larger ones after a marker byte as a uint8,
// uint16 or uint32, each tier biased by the capacity of the tiers before it.
type tier struct {
	name          string
	inline        byte
	mask          byte
	u8, u16, u32  byte
	bias8, bias16 uint64
	bias32        uint64
}

func newTier(name string, inline, mask, u8, u16, u32 byte) tier {
	t := tier{name: name, inline: inline, mask: mask, u8: u8, u16: u16, u32: u32}
	t.bias8 = uint64(mask) + 1
	t.bias16 = t.bias8 + 0x100
	t.bias32 = t.bias16 + 0x10000
	return t
}

var (
	stringTier  = newTier("string index", leadFixString, 0x1f, leadString8, leadString16, leadString32)
	arrayTier   = newTier("array length", leadFixArray, 0x0f, leadArray8, leadArray16, leadArray32)
	mappingTier = newTier("schema index", leadFixMapping, 0x0f, leadMapping8, leadMapping16, leadMapping32)
)

func (t tier) write(w *abstream.WriteStream, v uint64) error {
	if v <= uint64(t.mask) {
		return w.WriteByte(t.inline | byte(v))
	}
	v -= t.bias8
	if v <= 0xff {
		if err := w.WriteByte(t.u8); err != nil {
			return err
		}
		return w.WriteUint8(uint8(v))
	}
	v -= 0x100
	if v <= 0xffff {
		if err := w.WriteByte(t.u16); err != nil {
			return err
		}
		return w.WriteUint16(uint16(v))
	}
	v -= 0x10000
	if v > 0xffffffff {
		return fmt.Errorf("%w: %s %d does not fit the widest tier", ErrResourceExhausted, t.name, v+t.bias32)
	}
	if err := w.WriteByte(t.u32); err != nil {
		return err
	}
	return w.WriteUint32(uint32(v))
}

// read decodes the value following marker lead byte b, which must be one of
// t.u8, t.u16 or t.u32.
func (t tier) read(r *abstream.ReadStream, b byte) (uint64, error) {
	switch b {
	case t.u8:
		v, err := r.ReadUint8()
		return uint64(v) + t.bias8, err
	case t.u16:
		v, err := r.ReadUint16()
		return uint64(v) + t.bias16, err
	case t.u32:
		v, err := r.ReadUint32()
		return uint64(v) + t.bias32, err
	}
	return 0, fmt.Errorf("%w: 0x%02x is not a %s marker", ErrFormat, b, t.name)
}

// maxVaryLengthUintBytes is the encoded size of the largest uint32.
const maxVaryLengthUintBytes = 5

// writeVaryLengthUint writes v in 7-bit groups, least significant first,
// with 0x80 set on every byte but the last.
func writeVaryLengthUint(w *abstream.WriteStream, v uint64) error {
	if v > 0xffffffff {
		return fmt.Errorf("%w: table count %d exceeds 32 bits", ErrResourceExhausted, v)
	}
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return w.WriteByte(b)
		}
		if err := w.WriteByte(b | 0x80); err != nil {
			return err
		}
	}
}

func readVaryLengthUint(r *abstream.ReadStream) (uint64, error) {
	var v uint64
	for i := 0; ; i++ {
		if i == maxVaryLengthUintBytes {
			return 0, fmt.Errorf("%w: VaryLengthUint at offset %d exceeds %d bytes", ErrFormat, r.Offset()-i, maxVaryLengthUintBytes)
		}
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		v |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			break
		}
	}
	if v > 0xffffffff {
		return 0, fmt.Errorf("%w: VaryLengthUint %d exceeds 32 bits", ErrFormat, v)
	}
	return v, nil
}

func writeHeader(w *abstream.WriteStream) error {
	return w.WriteBytes([]byte{Magic0, Magic1, Magic2, Version})
}

func readHeader(r *abstream.ReadStream) (byte, error) {
	if r.Remaining() < headerSize {
		return 0, fmt.Errorf("%w: %d bytes is too short for a header", ErrFormat, r.Remaining())
	}
	p := r.ReadBytes(headerSize)
	if p[0] != Magic0 || p[1] != Magic1 || p[2] != Magic2 {
		return 0, fmt.Errorf("%w: bad magic % x", ErrFormat, p[:3])
	}
	if p[3] != Version {
		return 0, fmt.Errorf("%w: unsupported version %d", ErrFormat, p[3])
	}
	return p[3], nil
}

// IsCram reports whether data starts with the cram magic bytes.
func IsCram(data []byte) bool {
	return len(data) >= 3 && data[0] == Magic0 && data[1] == Magic1 && data[2] == Magic2
}
