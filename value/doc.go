// Package value provides the tagged value tree encoded by cram.
//
// # Overview
//
// A Value is a JSON-compatible node: null, undefined, boolean, integer,
// float, string, array or string-keyed mapping. The Type field selects which
// payload fields are meaningful:
//
//   - NullType, UndefinedType: no payload
//   - BoolType: Bool
//   - IntType: Int
//   - FloatType: Float
//   - StringType: String
//   - ArrayType: Values
//   - MappingType: Fields and Values, Fields[i] being the key of Values[i]
//
// Mapping keys are unique. Their order is preserved by the package but
// carries no meaning: Compare and Equal ignore it, and cram normalizes it to
// sorted order.
//
// # Creating Values
//
//	v := value.Mapping(
//	    "name", value.FromString("ada"),
//	    "tags", value.Array(value.FromString("x"), value.Null()),
//	)
//	n, err := value.FromAny(map[string]any{"k": 1.5})
//	j, err := value.FromJSON([]byte(`{"a": [1, 2]}`))
//	y, err := value.FromYAML([]byte("a: [1, 2]\n"))
//
// # Numbers
//
// Integers and floats are distinct types but compare by numeric value, so
// FromInt(2) and FromFloat(2) are Equal. Non-finite floats are valid Values;
// they have no JSON form.
//
// # Thread Safety
//
// Values are plain data and are not synchronized.
package value
