package value

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Value
		expected int
	}{
		{"Undefined < Null", Undefined(), Null(), -1},
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(0), -1},
		{"Number < String", FromFloat(1e9), FromString(""), -1},
		{"String < Array", FromString("z"), Array(), -1},
		{"Array < Mapping", Array(), Mapping(), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"Int == Float", FromInt(2), FromFloat(2), 0},
		{"Int < Float", FromInt(2), FromFloat(2.5), -1},
		{"Float < Int", FromFloat(-0.5), FromInt(0), -1},
		{"NaN == NaN", FromFloat(math.NaN()), FromFloat(math.NaN()), 0},
		{"NaN < Int", FromFloat(math.NaN()), FromInt(math.MinInt64), -1},
		{"Int < +Inf", FromInt(math.MaxInt64), FromFloat(math.Inf(1)), -1},
		{"nil == Null", nil, Null(), 0},

		{"String order", FromString("a"), FromString("b"), -1},
		{"Short Array < Long Array", Array(FromInt(1)), Array(FromInt(1), FromInt(2)), -1},
		{"Array element", Array(FromInt(1)), Array(FromInt(2)), -1},

		{"Mapping key order ignored",
			Mapping("a", FromInt(1), "b", FromInt(2)),
			Mapping("b", FromInt(2), "a", FromInt(1)),
			0},
		{"Mapping key comparison",
			Mapping("a", FromInt(1)),
			Mapping("b", FromInt(1)),
			-1},
		{"Mapping value comparison",
			Mapping("a", FromInt(1)),
			Mapping("a", FromInt(2)),
			-1},
		{"Short Mapping < Long Mapping",
			Mapping("a", FromInt(1)),
			Mapping("a", FromInt(1), "b", Null()),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	v := FromMap(map[string]*Value{"b": FromInt(2), "a": FromInt(1), "c": Null()})
	if diff := cmp.Diff([]string{"a", "b", "c"}, v.Fields); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
	if v.Get("b").Int != 2 {
		t.Errorf("Get(b) = %v", v.Get("b"))
	}
	if v.Get("zz") != nil {
		t.Errorf("Get(zz) should be nil")
	}
}

func TestClone(t *testing.T) {
	orig := Mapping("a", Array(FromString("x")))
	c := orig.Clone()
	c.Values[0].Values[0].String = "y"
	c.Fields[0] = "b"
	if orig.Fields[0] != "a" || orig.Values[0].Values[0].String != "x" {
		t.Errorf("Clone shares state with original")
	}
}

func TestFromAny(t *testing.T) {
	in := map[string]any{
		"nil":   nil,
		"b":     true,
		"i":     int8(-3),
		"u":     uint64(math.MaxUint64),
		"f":     float32(0.5),
		"s":     "str",
		"slice": []any{1, "two", []any{}},
		"nest":  map[string]any{"k": uint16(7)},
	}
	got, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	want := Mapping(
		"b", FromBool(true),
		"f", FromFloat(0.5),
		"i", FromInt(-3),
		"nest", Mapping("k", FromInt(7)),
		"nil", Null(),
		"s", FromString("str"),
		"slice", Array(FromInt(1), FromString("two"), Array()),
		"u", FromFloat(float64(uint64(math.MaxUint64))),
	)
	if !Equal(want, got) {
		t.Errorf("FromAny mismatch:\nwant %v\ngot  %v", ToAny(want), ToAny(got))
	}
	if diff := cmp.Diff(want.Fields, got.Fields); diff != "" {
		t.Errorf("keys not sorted (-want +got):\n%s", diff)
	}

	_, err = FromAny(map[string]any{"ch": make(chan int)})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestToAny(t *testing.T) {
	v := Mapping(
		"a", Array(Undefined(), FromInt(3), FromFloat(1.5)),
		"gone", Undefined(),
		"m", Mapping("s", FromString("x"), "t", FromBool(false), "n", Null()),
	)
	want := map[string]any{
		"a": []any{nil, 3, 1.5},
		"m": map[string]any{"s": "x", "t": false, "n": nil},
	}
	if diff := cmp.Diff(want, ToAny(v)); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON(t *testing.T) {
	v, err := FromJSON([]byte(`{"b": [1, -2, 3.25, 1e300, 9007199254740993], "a": null, "c": "é"}`))
	if err != nil {
		t.Fatal(err)
	}
	want := Mapping(
		"a", Null(),
		"b", Array(FromInt(1), FromInt(-2), FromFloat(3.25), FromFloat(1e300), FromInt(9007199254740993)),
		"c", FromString("é"),
	)
	if !Equal(want, v) {
		t.Errorf("FromJSON = %v", ToAny(v))
	}
	if big := v.Get("b").Values[4]; big.Type != IntType {
		t.Errorf("large integer should stay Int, got %s", big.Type)
	}
	if diff := cmp.Diff([]string{"b", "a", "c"}, v.Fields); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}

	d, err := ToJSON(v)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), `{"a":null,"b":[1,-2,3.25,1e+300,9007199254740993],"c":"é"}`; got != want {
		t.Errorf("ToJSON = %s, want %s", got, want)
	}

	if _, err := FromJSON([]byte(`{} {}`)); err == nil {
		t.Errorf("expected trailing data error")
	}
	if _, err := ToJSON(Array(FromFloat(math.Inf(-1)))); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported for -Inf, got %v", err)
	}
}

func TestFromJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"duplicate key", `{"b":1,"a":2,"b":3}`, ErrDuplicateKey},
		{"nested duplicate key", `[{"x":{"k":1,"k":1}}]`, ErrDuplicateKey},
		{"unterminated", `{"a":[1,2}`, nil},
		{"empty", ``, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromJSON([]byte(tt.in))
			if err == nil {
				t.Fatalf("FromJSON(%s) = %v, want error", tt.in, ToAny(v))
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
	v, err := FromJSON([]byte(`{"e":{},"l":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(Mapping("e", Mapping(), "l", Array()), v) {
		t.Errorf("empty containers: %v", ToAny(v))
	}
}

func TestYAML(t *testing.T) {
	v, err := FromYAML([]byte("z: 1\na:\n  - x\n  - 2.5\n  - null\n  - true\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := Mapping(
		"z", FromInt(1),
		"a", Array(FromString("x"), FromFloat(2.5), Null(), FromBool(true)),
	)
	if !Equal(want, v) {
		t.Errorf("FromYAML = %v", ToAny(v))
	}
	if diff := cmp.Diff([]string{"z", "a"}, v.Fields); diff != "" {
		t.Errorf("document key order lost (-want +got):\n%s", diff)
	}

	d, err := ToYAML(v)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromYAML(d)
	if err != nil {
		t.Fatalf("re-parse %q: %v", d, err)
	}
	if !Equal(v, back) {
		t.Errorf("YAML round trip mismatch: %s", d)
	}
}

func TestWalk(t *testing.T) {
	v := Mapping("a", Array(FromInt(1), nil), "b", FromString("s"))
	n := 0
	err := v.Walk(func(*Value) error {
		n++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("visited %d nodes, want 5", n)
	}
}

func TestGetPath(t *testing.T) {
	v := Mapping(
		"a", Array(FromInt(10), Mapping("b/c", FromString("x"), "~", Null())),
		"", FromBool(true),
	)
	tests := []struct {
		path string
		want *Value
		err  bool
	}{
		{path: "", want: v},
		{path: "/a/0", want: FromInt(10)},
		{path: "/a/1/b~1c", want: FromString("x")},
		{path: "/a/1/~0", want: Null()},
		{path: "/", want: FromBool(true)},
		{path: "a", err: true},
		{path: "/a/2", err: true},
		{path: "/a/01", err: true},
		{path: "/a/-1", err: true},
		{path: "/x", err: true},
		{path: "/a/0/b", err: true},
	}
	for _, tt := range tests {
		got, err := v.GetPath(tt.path)
		if tt.err {
			if !errors.Is(err, ErrPath) {
				t.Errorf("GetPath(%q) error = %v, want ErrPath", tt.path, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("GetPath(%q): %v", tt.path, err)
			continue
		}
		if !Equal(tt.want, got) {
			t.Errorf("GetPath(%q) = %+v, want %+v", tt.path, got, tt.want)
		}
	}
}
