package value

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
)

// FromAny converts a Go value built from the usual JSON-like shapes into a
// Value. It accepts nil, bool, every integer kind, float32 and float64,
// string, json.Number, []any, map[string]any, []*Value, map[string]*Value
// and *Value (which is cloned). Anything else is ErrUnsupported.
//
// Unsigned integers above math.MaxInt64 become floats.
func FromAny(v any) (*Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Value:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		return fromNumber(string(x))
	case []any:
		res := make([]*Value, len(x))
		for i, elt := range x {
			c, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res[i] = c
		}
		return FromSlice(res), nil
	case []*Value:
		res := make([]*Value, len(x))
		for i, elt := range x {
			res[i] = elt.Clone()
		}
		return FromSlice(res), nil
	case map[string]any:
		res := &Value{Type: MappingType}
		for _, k := range slices.Sorted(maps.Keys(x)) {
			c, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			res.Fields = append(res.Fields, k)
			res.Values = append(res.Values, c)
		}
		if res.Fields == nil {
			res.Fields, res.Values = []string{}, []*Value{}
		}
		return res, nil
	case map[string]*Value:
		m := make(map[string]*Value, len(x))
		for k, elt := range x {
			m[k] = elt.Clone()
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: Go type %T", ErrUnsupported, v)
	}
}

func fromUint(u uint64) *Value {
	if u > math.MaxInt64 {
		return FromFloat(float64(u))
	}
	return FromInt(int64(u))
}

func fromNumber(s string) (*Value, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: number %q", ErrUnsupported, s)
	}
	return FromFloat(f), nil
}

// ToAny converts v into plain Go values: nil, bool, int, float64, string,
// []any and map[string]any. Undefined becomes nil inside arrays and is
// dropped from mappings.
func ToAny(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case MappingType:
		res := make(map[string]any, len(v.Fields))
		for i, k := range v.Fields {
			c := v.Values[i]
			if c != nil && c.Type == UndefinedType {
				continue
			}
			res[k] = ToAny(c)
		}
		return res
	case ArrayType:
		res := make([]any, len(v.Values))
		for i, elt := range v.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return v.String
	case IntType:
		return int(v.Int)
	case FloatType:
		return v.Float
	case BoolType:
		return v.Bool
	case NullType, UndefinedType:
		return nil
	default:
		panic("impossible production")
	}
}
