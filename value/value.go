package value

import (
	"maps"
	"slices"
)

// Value is a node in a JSON-compatible value tree.
//
// Payload fields are used according to Type. For MappingType, Fields[i] is
// the key of Values[i]; for ArrayType, Values holds the elements.
type Value struct {
	Type   Type
	Fields []string
	Values []*Value

	String string
	Bool   bool
	Int    int64
	Float  float64
}

type KeyVal struct {
	Key string
	Val *Value
}

func Null() *Value {
	return &Value{Type: NullType}
}

func Undefined() *Value {
	return &Value{Type: UndefinedType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Type: IntType, Int: v}
}

func FromFloat(f float64) *Value {
	return &Value{Type: FloatType, Float: f}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, String: v}
}

func FromSlice(vs []*Value) *Value {
	if vs == nil {
		vs = []*Value{}
	}
	return &Value{Type: ArrayType, Values: vs}
}

// FromMap returns a mapping with keys in sorted order.
func FromMap(m map[string]*Value) *Value {
	res := &Value{
		Type:   MappingType,
		Fields: make([]string, 0, len(m)),
		Values: make([]*Value, 0, len(m)),
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, k)
		res.Values = append(res.Values, m[k])
	}
	return res
}

// FromKeyVals returns a mapping with keys in the given order.
func FromKeyVals(kvs []KeyVal) *Value {
	res := &Value{
		Type:   MappingType,
		Fields: make([]string, len(kvs)),
		Values: make([]*Value, len(kvs)),
	}
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

// Mapping builds a mapping from alternating keys and values, in order.
// It panics if the arguments are not string, *Value pairs.
func Mapping(kvs ...any) *Value {
	if len(kvs)%2 != 0 {
		panic("value: Mapping called with odd number of arguments")
	}
	res := &Value{Type: MappingType}
	for i := 0; i < len(kvs); i += 2 {
		res.Fields = append(res.Fields, kvs[i].(string))
		res.Values = append(res.Values, kvs[i+1].(*Value))
	}
	return res
}

// Array builds an array from its arguments.
func Array(vs ...*Value) *Value {
	return FromSlice(vs)
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := *v
	res.Fields = slices.Clone(v.Fields)
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, c := range v.Values {
			res.Values[i] = c.Clone()
		}
	}
	return &res
}

// Get returns the value stored under key in a mapping, or nil.
func (v *Value) Get(key string) *Value {
	if v == nil || v.Type != MappingType {
		return nil
	}
	i := slices.Index(v.Fields, key)
	if i < 0 {
		return nil
	}
	return v.Values[i]
}

func (v *Value) KeyVals() []KeyVal {
	if v.Type != MappingType {
		return nil
	}
	res := make([]KeyVal, len(v.Fields))
	for i := range v.Fields {
		res[i] = KeyVal{Key: v.Fields[i], Val: v.Values[i]}
	}
	return res
}

// Number returns the numeric payload of an Int or Float value.
func (v *Value) Number() (float64, bool) {
	switch v.Type {
	case IntType:
		return float64(v.Int), true
	case FloatType:
		return v.Float, true
	}
	return 0, false
}

// Walk calls f on v and then on every descendant in depth-first order,
// stopping at the first error.
func (v *Value) Walk(f func(*Value) error) error {
	if err := f(v); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	for _, c := range v.Values {
		if err := c.Walk(f); err != nil {
			return err
		}
	}
	return nil
}
