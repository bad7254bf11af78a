package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/cram/cram"
	"github.com/signadot/cram/format"
	"github.com/signadot/cram/value"
)

type EncState struct {
	depth, indent int

	format  format.Format
	wire    bool
	lenient bool

	cramOpts []cram.Option

	Color func(value.Type, ColorAttr, string) string
}

// Encode writes v to w. The default format is cram; JSON is indented by two
// spaces per level unless EncodeWire or EncodeIndent say otherwise.
func Encode(v *value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.CramFormat:
		d, err := cram.Encode(v, es.cramOpts...)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.YAMLFormat:
		d, err := value.ToYAML(v)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		_, err = w.Write(d)
		return err
	case format.JSONFormat:
	default:
		return fmt.Errorf("%w: unknown format %s", ErrEncoding, es.format)
	}
	if v != nil && v.Type == value.UndefinedType && !es.lenient {
		return fmt.Errorf("%w: undefined has no JSON form", ErrEncoding)
	}
	if err := encode(v, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, t value.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func writeSep(w io.Writer, es *EncState, t value.Type, sep string) error {
	return writeString(w, applyColor(es, t, SepColor, sep))
}

func writeValue(w io.Writer, es *EncState, t value.Type, v string) error {
	return writeString(w, applyColor(es, t, ValueColor, v))
}

func quoteString(v string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// encoding a string cannot fail
	_ = enc.Encode(v)
	return strings.TrimSuffix(buf.String(), "\n")
}

func encode(v *value.Value, w io.Writer, es *EncState) error {
	if v == nil {
		return writeValue(w, es, value.NullType, "null")
	}
	switch v.Type {
	case value.MappingType:
		return encodeMapping(v, w, es)
	case value.ArrayType:
		return encodeArray(v, w, es)
	case value.StringType:
		return writeValue(w, es, v.Type, quoteString(v.String))
	case value.IntType:
		return writeValue(w, es, v.Type, strconv.FormatInt(v.Int, 10))
	case value.FloatType:
		s, err := formatFloat(v.Float, es)
		if err != nil {
			return err
		}
		return writeValue(w, es, v.Type, s)
	case value.BoolType:
		return writeValue(w, es, v.Type, strconv.FormatBool(v.Bool))
	case value.NullType:
		return writeValue(w, es, v.Type, "null")
	case value.UndefinedType:
		if es.lenient {
			return writeValue(w, es, v.Type, "undefined")
		}
		return writeValue(w, es, value.NullType, "null")
	default:
		return fmt.Errorf("%w: value type %s", ErrEncoding, v.Type)
	}
}

// formatFloat formats f the way JSON encoders in the wild do: plain
// notation between 1e-6 and 1e21, exponent notation outside.
func formatFloat(f float64, es *EncState) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if !es.lenient {
			return "", fmt.Errorf("%w: %v has no JSON form", ErrEncoding, f)
		}
		switch {
		case math.IsNaN(f):
			return "NaN", nil
		case f > 0:
			return "Infinity", nil
		default:
			return "-Infinity", nil
		}
	}
	fmtc := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmtc = 'e'
	}
	b := strconv.AppendFloat(nil, f, fmtc, -1, 64)
	if fmtc == 'e' {
		// e-09 to e-9
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b), nil
}

func encodeMapping(v *value.Value, w io.Writer, es *EncState) error {
	if len(v.Fields) != len(v.Values) {
		return fmt.Errorf("%w: mapping with %d keys and %d values", ErrEncoding, len(v.Fields), len(v.Values))
	}
	idx := make([]int, 0, len(v.Fields))
	for i, c := range v.Values {
		if c != nil && c.Type == value.UndefinedType && !es.lenient {
			continue
		}
		idx = append(idx, i)
	}
	if err := writeSep(w, es, value.MappingType, "{"); err != nil {
		return err
	}
	if len(idx) == 0 {
		return writeSep(w, es, value.MappingType, "}")
	}
	es.depth++
	for j, i := range idx {
		if j > 0 {
			if err := writeSep(w, es, value.MappingType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		field := applyColor(es, value.MappingType, FieldColor, quoteString(v.Fields[i]))
		if err := writeString(w, field); err != nil {
			return err
		}
		sep := ":"
		if !es.wire {
			sep = ": "
		}
		if err := writeSep(w, es, value.MappingType, sep); err != nil {
			return err
		}
		if err := encode(v.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, value.MappingType, "}")
}

func encodeArray(v *value.Value, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, value.ArrayType, "["); err != nil {
		return err
	}
	if len(v.Values) == 0 {
		return writeSep(w, es, value.ArrayType, "]")
	}
	es.depth++
	for i, elt := range v.Values {
		if i > 0 {
			if err := writeSep(w, es, value.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, value.ArrayType, "]")
}
