package cram

import (
	"fmt"
	"slices"

	"github.com/signadot/cram/abstream"
	"github.com/signadot/cram/debug"
	"github.com/signadot/cram/utf8codec"
	"github.com/signadot/cram/value"
)

// Reader decodes documents produced by Writer. Each call to ReadGraph reads
// its own tables. A Reader is not safe for concurrent use.
type Reader struct {
	opts    *opts
	r       *abstream.ReadStream
	version byte
	strings []string
	schemas [][]string
}

func NewReader(options ...Option) *Reader {
	return &Reader{opts: newOpts(options)}
}

// ReadGraph decodes a complete document. The data must hold exactly one
// root value after the tables.
func (r *Reader) ReadGraph(data []byte) (*value.Value, error) {
	if err := r.readTables(data); err != nil {
		return nil, err
	}
	v, err := r.readValue(0)
	if err != nil {
		return nil, err
	}
	if !r.r.EOF() {
		return nil, fmt.Errorf("%w: %d trailing bytes after root value", ErrFormat, r.r.Remaining())
	}
	if debug.Decode() {
		debug.Logf("cram: decoded %d bytes:\n%v\n", len(data), v)
	}
	return v, nil
}

func (r *Reader) readTables(data []byte) error {
	r.r = abstream.NewReadStream(data)
	r.r.LittleEndian = true
	r.strings = nil
	r.schemas = nil

	version, err := readHeader(r.r)
	if err != nil {
		return err
	}
	r.version = version
	if err := r.readStringTable(); err != nil {
		return fmt.Errorf("string table: %w", err)
	}
	if err := r.readSchemaTable(); err != nil {
		return fmt.Errorf("schema table: %w", err)
	}
	return nil
}

// readCount reads a VaryLengthUint counting items that occupy at least one
// byte each, so a count above the remaining input is truncation.
func (r *Reader) readCount(what string) (int, error) {
	n, err := readVaryLengthUint(r.r)
	if err != nil {
		return 0, err
	}
	if n > uint64(r.r.Remaining()) {
		return 0, fmt.Errorf("%w: %s %d exceeds the %d remaining bytes", ErrTruncated, what, n, r.r.Remaining())
	}
	return int(n), nil
}

func (r *Reader) readStringTable() error {
	n, err := r.readCount("string count")
	if err != nil {
		return err
	}
	r.strings = make([]string, n)
	for i := range r.strings {
		size, err := r.readCount("string length")
		if err != nil {
			return err
		}
		s, err := utf8codec.Decode(r.r.ReadBytes(size))
		if err != nil {
			return fmt.Errorf("string %d: %w", i, err)
		}
		r.strings[i] = s
	}
	return nil
}

func (r *Reader) readSchemaTable() error {
	n, err := r.readCount("schema count")
	if err != nil {
		return err
	}
	r.schemas = make([][]string, n)
	for i := range r.schemas {
		nKeys, err := r.readCount("key count")
		if err != nil {
			return err
		}
		keys := make([]string, nKeys)
		seen := make(map[string]bool, nKeys)
		for j := range keys {
			idx, err := readVaryLengthUint(r.r)
			if err != nil {
				return err
			}
			if idx >= uint64(len(r.strings)) {
				return fmt.Errorf("%w: schema %d key %d refers to string %d of %d", ErrIndexRange, i, j, idx, len(r.strings))
			}
			k := r.strings[idx]
			if seen[k] {
				return fmt.Errorf("%w: schema %d repeats key %q", ErrFormat, i, k)
			}
			seen[k] = true
			keys[j] = k
		}
		r.schemas[i] = keys
	}
	if debug.Tables() {
		debug.Logf("cram: read %d strings, %d schemas\n", len(r.strings), len(r.schemas))
	}
	return nil
}

func (r *Reader) readValue(depth int) (*value.Value, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return nil, err
	}
	switch {
	case b <= leadPosFixMax:
		return value.FromInt(int64(b)), nil
	case b < leadFixArray:
		return r.readMapping(uint64(b&mappingTier.mask), depth)
	case b < leadFixString:
		return r.readArray(uint64(b&arrayTier.mask), depth)
	case b < leadNull:
		return r.stringAt(uint64(b & stringTier.mask))
	case b >= leadNegFixMin:
		return value.FromInt(int64(int8(b))), nil
	}

	switch b {
	case leadNull:
		return value.Null(), nil
	case leadUndefined:
		return value.Undefined(), nil
	case leadFalse:
		return value.FromBool(false), nil
	case leadTrue:
		return value.FromBool(true), nil

	case leadArray8, leadArray16, leadArray32:
		n, err := arrayTier.read(r.r, b)
		if err != nil {
			return nil, err
		}
		return r.readArray(n, depth)
	case leadMapping8, leadMapping16, leadMapping32:
		idx, err := mappingTier.read(r.r, b)
		if err != nil {
			return nil, err
		}
		return r.readMapping(idx, depth)
	case leadString8, leadString16, leadString32:
		idx, err := stringTier.read(r.r, b)
		if err != nil {
			return nil, err
		}
		return r.stringAt(idx)

	case leadFloat32:
		f, err := r.r.ReadFloat32()
		return number(value.FromFloat(float64(f)), err)
	case leadFloat64:
		f, err := r.r.ReadFloat64()
		return number(value.FromFloat(f), err)

	case leadUint8:
		i, err := r.r.ReadUint8()
		return number(value.FromInt(int64(i)), err)
	case leadUint16:
		i, err := r.r.ReadUint16()
		return number(value.FromInt(int64(i)), err)
	case leadUint32:
		i, err := r.r.ReadUint32()
		return number(value.FromInt(int64(i)), err)

	case leadInt8:
		i, err := r.r.ReadInt8()
		return number(value.FromInt(int64(i)), err)
	case leadInt16:
		i, err := r.r.ReadInt16()
		return number(value.FromInt(int64(i)), err)
	case leadInt32:
		i, err := r.r.ReadInt32()
		return number(value.FromInt(int64(i)), err)
	}
	return nil, fmt.Errorf("%w: reserved lead byte 0x%02x at offset %d", ErrUnsupportedType, b, r.r.Offset()-1)
}

func number(v *value.Value, err error) (*value.Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *Reader) enter(depth int) error {
	limit := r.opts.maxDepth
	if limit <= 0 {
		limit = DefaultMaxDecodeDepth
	}
	if depth >= limit {
		return fmt.Errorf("%w: limit is %d", ErrDepthExceeded, limit)
	}
	return nil
}

func (r *Reader) stringAt(idx uint64) (*value.Value, error) {
	if idx >= uint64(len(r.strings)) {
		return nil, fmt.Errorf("%w: string %d of %d", ErrIndexRange, idx, len(r.strings))
	}
	return value.FromString(r.strings[idx]), nil
}

func (r *Reader) readArray(n uint64, depth int) (*value.Value, error) {
	if err := r.enter(depth); err != nil {
		return nil, err
	}
	if n > uint64(r.r.Remaining()) {
		return nil, fmt.Errorf("%w: array of %d elements with %d bytes left", ErrTruncated, n, r.r.Remaining())
	}
	vs, err := r.readValues(int(n), depth)
	if err != nil {
		return nil, err
	}
	return value.FromSlice(vs), nil
}

func (r *Reader) readMapping(idx uint64, depth int) (*value.Value, error) {
	if err := r.enter(depth); err != nil {
		return nil, err
	}
	if idx >= uint64(len(r.schemas)) {
		return nil, fmt.Errorf("%w: schema %d of %d", ErrIndexRange, idx, len(r.schemas))
	}
	keys := r.schemas[idx]
	if len(keys) > r.r.Remaining() {
		return nil, fmt.Errorf("%w: mapping of %d values with %d bytes left", ErrTruncated, len(keys), r.r.Remaining())
	}
	vs, err := r.readValues(len(keys), depth)
	if err != nil {
		return nil, err
	}
	return &value.Value{
		Type:   value.MappingType,
		Fields: slices.Clone(keys),
		Values: vs,
	}, nil
}

func (r *Reader) readValues(n, depth int) ([]*value.Value, error) {
	vs := make([]*value.Value, n)
	for i := range vs {
		v, err := r.readValue(depth + 1)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}
