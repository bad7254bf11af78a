package value

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Numbers compare by numeric value regardless of Int or Float type, NaN
// being equal to NaN and below every other number. Mappings compare as their
// key/value pairs sorted by key, so key order is not significant. A nil
// *Value compares as Null.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		a = &Value{Type: NullType}
	}
	if b == nil {
		b = &Value{Type: NullType}
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case IntType, FloatType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a.Values, b.Values)
	case MappingType:
		return compareMappings(a, b)
	}
	return 0
}

// Equal reports whether Compare(a, b) == 0.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Undefined < Null < Bool < Number < String < Array < Mapping
func rank(t Type) int {
	switch t {
	case UndefinedType:
		return 0
	case NullType:
		return 1
	case BoolType:
		return 2
	case IntType, FloatType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case MappingType:
		return 6
	}
	return 100
}

func compareNumbers(a, b *Value) int {
	switch {
	case a.Type == IntType && b.Type == IntType:
		return cmp.Compare(a.Int, b.Int)
	case a.Type == FloatType && b.Type == FloatType:
		return cmp.Compare(a.Float, b.Float)
	case a.Type == IntType:
		return compareIntFloat(a.Int, b.Float)
	default:
		return -compareIntFloat(b.Int, a.Float)
	}
}

func compareIntFloat(i int64, f float64) int {
	if math.IsNaN(f) {
		return 1
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return cmp.Compare(i, int64(f))
	}
	return cmp.Compare(float64(i), f)
}

func compareArrays(a, b []*Value) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareMappings(a, b *Value) int {
	pa, pb := sortedPairs(a), sortedPairs(b)
	n := min(len(pa), len(pb))
	for i := 0; i < n; i++ {
		if c := strings.Compare(pa[i].Key, pb[i].Key); c != 0 {
			return c
		}
		if c := Compare(pa[i].Val, pb[i].Val); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(pa), len(pb))
}

func sortedPairs(v *Value) []KeyVal {
	kvs := v.KeyVals()
	slices.SortStableFunc(kvs, func(x, y KeyVal) int {
		return strings.Compare(x.Key, y.Key)
	})
	return kvs
}
