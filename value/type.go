package value

import "fmt"

type Type int

const (
	NullType Type = iota
	UndefinedType
	BoolType
	IntType
	FloatType
	StringType
	ArrayType
	MappingType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:      "Null",
		UndefinedType: "Undefined",
		BoolType:      "Bool",
		IntType:       "Int",
		FloatType:     "Float",
		StringType:    "String",
		ArrayType:     "Array",
		MappingType:   "Mapping",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":      NullType,
		"Undefined": UndefinedType,
		"Bool":      BoolType,
		"Int":       IntType,
		"Float":     FloatType,
		"String":    StringType,
		"Array":     ArrayType,
		"Mapping":   MappingType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		UndefinedType,
		BoolType,
		IntType,
		FloatType,
		StringType,
		ArrayType,
		MappingType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, MappingType:
		return false
	default:
		return true
	}
}

func (t Type) IsNumber() bool {
	return t == IntType || t == FloatType
}
