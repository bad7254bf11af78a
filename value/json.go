package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// FromJSON parses a single JSON document. Integral numbers that fit in an
// int64 become Int values, all other numbers Float values. Mapping keys keep
// their input order, and a repeated key yields ErrDuplicateKey.
func FromJSON(d []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := fromJSONTokens(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after JSON document at offset %d", dec.InputOffset())
	}
	return v, nil
}

func fromJSONTokens(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '[':
			return fromJSONArray(dec)
		case '{':
			return fromJSONObject(dec)
		}
		return nil, fmt.Errorf("unexpected %q at offset %d", x, dec.InputOffset())
	case json.Number:
		return fromNumber(string(x))
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("%w: JSON token %T", ErrUnsupported, tok)
}

func fromJSONArray(dec *json.Decoder) (*Value, error) {
	vs := []*Value{}
	for dec.More() {
		c, err := fromJSONTokens(dec)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", len(vs), err)
		}
		vs = append(vs, c)
	}
	// closing ]
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return FromSlice(vs), nil
}

func fromJSONObject(dec *json.Decoder) (*Value, error) {
	res := &Value{Type: MappingType, Fields: []string{}, Values: []*Value{}}
	seen := map[string]bool{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		k, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v at offset %d is not a string", tok, dec.InputOffset())
		}
		if seen[k] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, k)
		}
		seen[k] = true
		c, err := fromJSONTokens(dec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		res.Fields = append(res.Fields, k)
		res.Values = append(res.Values, c)
	}
	// closing }
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return res, nil
}

// ToJSON renders v as compact JSON. Non-finite floats cannot be represented
// and yield ErrUnsupported.
func ToJSON(v *Value) ([]byte, error) {
	if err := checkFinite(v); err != nil {
		return nil, err
	}
	return json.Marshal(ToAny(v))
}

func checkFinite(v *Value) error {
	if v == nil {
		return nil
	}
	return v.Walk(func(x *Value) error {
		if x != nil && x.Type == FloatType && (math.IsNaN(x.Float) || math.IsInf(x.Float, 0)) {
			return fmt.Errorf("%w: %v has no JSON form", ErrUnsupported, x.Float)
		}
		return nil
	})
}
