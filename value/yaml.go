package value

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// FromYAML parses a YAML document. Mapping keys keep their document order;
// non-string scalar keys are converted to their YAML text form.
func FromYAML(d []byte) (*Value, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAMLAny(v)
}

func fromYAMLAny(v any) (*Value, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := &Value{Type: MappingType, Fields: []string{}, Values: []*Value{}}
		seen := make(map[string]bool, len(x))
		for _, item := range x {
			k, err := yamlKey(item.Key)
			if err != nil {
				return nil, err
			}
			if seen[k] {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, k)
			}
			seen[k] = true
			c, err := fromYAMLAny(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			res.Fields = append(res.Fields, k)
			res.Values = append(res.Values, c)
		}
		return res, nil
	case []any:
		res := make([]*Value, len(x))
		for i, elt := range x {
			c, err := fromYAMLAny(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res[i] = c
		}
		return FromSlice(res), nil
	default:
		return FromAny(v)
	}
}

func yamlKey(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case nil:
		return "null", nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(x), nil
	default:
		return "", fmt.Errorf("%w: mapping key of type %T", ErrUnsupported, k)
	}
}

// ToYAML renders v as a YAML document, keeping mapping key order.
// Undefined values are dropped from mappings and become null in arrays.
func ToYAML(v *Value) ([]byte, error) {
	return yaml.Marshal(toYAMLAny(v))
}

func toYAMLAny(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case MappingType:
		res := make(yaml.MapSlice, 0, len(v.Fields))
		for i, k := range v.Fields {
			c := v.Values[i]
			if c != nil && c.Type == UndefinedType {
				continue
			}
			res = append(res, yaml.MapItem{Key: k, Value: toYAMLAny(c)})
		}
		return res
	case ArrayType:
		res := make([]any, len(v.Values))
		for i, elt := range v.Values {
			res[i] = toYAMLAny(elt)
		}
		return res
	default:
		return ToAny(v)
	}
}
