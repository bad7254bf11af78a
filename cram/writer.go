package cram

import (
	"fmt"
	"math"
	"slices"

	"github.com/signadot/cram/abstream"
	"github.com/signadot/cram/debug"
	"github.com/signadot/cram/utf8codec"
	"github.com/signadot/cram/value"
)

const tableInitialSize = 256

// Writer encodes value trees. Each call to WriteGraph builds fresh tables,
// so nothing is shared between calls. A Writer is not safe for concurrent
// use; use one Writer per goroutine.
type Writer struct {
	opts    *opts
	strings *stringTable
	schemas *schemaTable
	data    *abstream.WriteStream
}

func NewWriter(options ...Option) *Writer {
	return &Writer{opts: newOpts(options)}
}

// WriteGraph encodes v as a complete document: header, string table,
// schema table and object graph.
func (w *Writer) WriteGraph(v *value.Value) ([]byte, error) {
	w.strings = newStringTable()
	w.schemas = newSchemaTable()
	w.data = abstream.NewWriteStream(w.opts.initialSize, w.opts.maxSize)
	w.data.LittleEndian = true
	if debug.Encode() {
		debug.Logf("cram: encoding\n%v\n", v)
	}

	// the graph is buffered first: the tables it fills must precede it
	if err := w.writeValue(v, 0); err != nil {
		return nil, err
	}
	schemaTable, err := w.writeSchemaTable()
	if err != nil {
		return nil, err
	}
	stringTable, err := w.writeStringTable()
	if err != nil {
		return nil, err
	}

	size := headerSize + stringTable.Len() + schemaTable.Len() + w.data.Len()
	if size > w.opts.maxSize {
		return nil, fmt.Errorf("%w: document of %d bytes, limit is %d", ErrResourceExhausted, size, w.opts.maxSize)
	}
	if debug.Tables() {
		debug.Logf("cram: %d strings (%d bytes), %d schemas (%d bytes), graph %d bytes\n",
			w.strings.len(), stringTable.Len(), w.schemas.len(), schemaTable.Len(), w.data.Len())
	}
	out := abstream.NewWriteStream(size, w.opts.maxSize)
	if err := writeHeader(out); err != nil {
		return nil, err
	}
	for _, part := range []*abstream.WriteStream{stringTable, schemaTable, w.data} {
		if err := out.WriteBytes(part.Bytes()); err != nil {
			return nil, err
		}
	}
	return out.Bytes(), nil
}

func (w *Writer) newTableStream() *abstream.WriteStream {
	s := abstream.NewWriteStream(tableInitialSize, w.opts.maxSize)
	s.LittleEndian = true
	return s
}

// writeSchemaTable serializes the schema table. Schema keys are interned in
// the string table here, after every graph string.
func (w *Writer) writeSchemaTable() (*abstream.WriteStream, error) {
	s := w.newTableStream()
	if err := writeVaryLengthUint(s, uint64(w.schemas.len())); err != nil {
		return nil, err
	}
	for _, keys := range w.schemas.schemas {
		if err := writeVaryLengthUint(s, uint64(len(keys))); err != nil {
			return nil, err
		}
		for _, k := range keys {
			if err := writeVaryLengthUint(s, uint64(w.strings.indexFor(k))); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func (w *Writer) writeStringTable() (*abstream.WriteStream, error) {
	s := w.newTableStream()
	if err := writeVaryLengthUint(s, uint64(w.strings.len())); err != nil {
		return nil, err
	}
	for _, str := range w.strings.strings {
		b, err := utf8codec.Encode(str)
		if err != nil {
			return nil, err
		}
		if err := writeVaryLengthUint(s, uint64(len(b))); err != nil {
			return nil, err
		}
		if err := s.WriteBytes(b); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (w *Writer) writeValue(v *value.Value, depth int) error {
	if v == nil {
		return w.data.WriteByte(leadNull)
	}
	switch v.Type {
	case value.NullType:
		return w.data.WriteByte(leadNull)
	case value.UndefinedType:
		return w.data.WriteByte(leadUndefined)
	case value.BoolType:
		if v.Bool {
			return w.data.WriteByte(leadTrue)
		}
		return w.data.WriteByte(leadFalse)
	case value.IntType:
		return writeInteger(w.data, v.Int)
	case value.FloatType:
		return writeNumber(w.data, v.Float)
	case value.StringType:
		return stringTier.write(w.data, uint64(w.strings.indexFor(v.String)))
	case value.ArrayType:
		return w.writeArray(v, depth)
	case value.MappingType:
		return w.writeMapping(v, depth)
	}
	return fmt.Errorf("%w: value type %s", ErrUnsupportedType, v.Type)
}

func (w *Writer) enter(depth int) error {
	if w.opts.maxDepth > 0 && depth >= w.opts.maxDepth {
		return fmt.Errorf("%w: limit is %d", ErrDepthExceeded, w.opts.maxDepth)
	}
	return nil
}

func (w *Writer) writeArray(v *value.Value, depth int) error {
	if err := w.enter(depth); err != nil {
		return err
	}
	if err := arrayTier.write(w.data, uint64(len(v.Values))); err != nil {
		return err
	}
	for _, elt := range v.Values {
		if err := w.writeValue(elt, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeMapping(v *value.Value, depth int) error {
	if err := w.enter(depth); err != nil {
		return err
	}
	if len(v.Fields) != len(v.Values) {
		return fmt.Errorf("%w: mapping with %d keys and %d values", ErrInvalidValue, len(v.Fields), len(v.Values))
	}
	names := make([]string, len(v.Fields))
	for i, k := range v.Fields {
		names[i] = validString(k)
	}
	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return compareKeys(names[a], names[b])
	})
	keys := make([]string, len(order))
	for i, j := range order {
		keys[i] = names[j]
		if i > 0 && keys[i] == keys[i-1] {
			return fmt.Errorf("%w: %w %q", ErrInvalidValue, value.ErrDuplicateKey, keys[i])
		}
	}
	if err := mappingTier.write(w.data, uint64(w.schemas.indexFor(keys))); err != nil {
		return err
	}
	for _, j := range order {
		if err := w.writeValue(v.Values[j], depth+1); err != nil {
			return err
		}
	}
	return nil
}

// writeInteger writes i in the narrowest integer form, or as a float when
// it is outside the int32 and uint32 ranges.
func writeInteger(w *abstream.WriteStream, i int64) error {
	if i >= 0 && i <= int64(leadPosFixMax) {
		return w.WriteByte(byte(i))
	}
	if i < 0 {
		switch {
		case i >= math.MinInt8:
			// this bit test is the wire format's definition of the
			// negative literal range; it selects exactly -32..-1
			if i&0xe0 == 0xe0 {
				return w.WriteByte(byte(i))
			}
			return writeLead(w, leadInt8, w.WriteInt8, int8(i))
		case i >= math.MinInt16:
			return writeLead(w, leadInt16, w.WriteInt16, int16(i))
		case i >= math.MinInt32:
			return writeLead(w, leadInt32, w.WriteInt32, int32(i))
		}
	} else {
		switch {
		case i <= math.MaxUint8:
			return writeLead(w, leadUint8, w.WriteUint8, uint8(i))
		case i <= math.MaxUint16:
			return writeLead(w, leadUint16, w.WriteUint16, uint16(i))
		case i <= math.MaxUint32:
			return writeLead(w, leadUint32, w.WriteUint32, uint32(i))
		}
	}
	return writeFloat(w, float64(i))
}

// writeNumber writes integral finite floats in integer form and all others
// in float form.
func writeNumber(w *abstream.WriteStream, f float64) error {
	if !math.IsInf(f, 0) && f == math.Trunc(f) && f >= math.MinInt32 && f <= math.MaxUint32 {
		return writeInteger(w, int64(f))
	}
	return writeFloat(w, f)
}

func writeFloat(w *abstream.WriteStream, f float64) error {
	if fitsFloat32(f) {
		return writeLead(w, leadFloat32, w.WriteFloat32, float32(f))
	}
	return writeLead(w, leadFloat64, w.WriteFloat64, f)
}

// fitsFloat32 reports whether f survives conversion to float32 unchanged.
// Non-finite values always do.
func fitsFloat32(f float64) bool {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return true
	}
	return float64(float32(f)) == f
}

func writeLead[T any](w *abstream.WriteStream, lead byte, put func(T) error, v T) error {
	if err := w.WriteByte(lead); err != nil {
		return err
	}
	return put(v)
}
