package libdiff

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/cram/value"
)

func TestDiff(t *testing.T) {
	i := value.FromInt
	s := value.FromString
	tests := []struct {
		name     string
		from, to *value.Value
		want     []Change
	}{
		{
			name: "equal",
			from: value.Mapping("a", i(1), "b", value.Array(s("x"))),
			to:   value.Mapping("b", value.Array(s("x")), "a", i(1)),
		},
		{
			name: "int equals float",
			from: value.Array(i(2)),
			to:   value.Array(value.FromFloat(2)),
		},
		{
			name: "root replace",
			from: s("x"),
			to:   i(1),
			want: []Change{{Op: OpReplace, Path: "", From: s("x"), To: i(1)}},
		},
		{
			name: "mapping",
			from: value.Mapping("a", i(1), "b", i(2), "c", i(3)),
			to:   value.Mapping("d", i(5), "c", i(4), "b", i(2)),
			want: []Change{
				{Op: OpRemove, Path: "/a", From: i(1)},
				{Op: OpReplace, Path: "/c", From: i(3), To: i(4)},
				{Op: OpAdd, Path: "/d", To: i(5)},
			},
		},
		{
			name: "escaped key",
			from: value.Mapping("a/b", i(1), "~", i(1)),
			to:   value.Mapping("a/b", i(2), "~", i(2)),
			want: []Change{
				{Op: OpReplace, Path: "/a~1b", From: i(1), To: i(2)},
				{Op: OpReplace, Path: "/~0", From: i(1), To: i(2)},
			},
		},
		{
			name: "array remove",
			from: value.Array(i(1), i(2), i(3)),
			to:   value.Array(i(1), i(3)),
			want: []Change{{Op: OpRemove, Path: "/1", From: i(2)}},
		},
		{
			name: "array insert",
			from: value.Array(i(1), i(2)),
			to:   value.Array(i(0), i(1), i(2)),
			want: []Change{{Op: OpAdd, Path: "/0", To: i(0)}},
		},
		{
			name: "array nested change",
			from: value.Array(i(1), value.Mapping("a", i(1), "b", i(0))),
			to:   value.Array(i(1), value.Mapping("a", i(2), "b", i(0))),
			want: []Change{{Op: OpReplace, Path: "/1/a", From: i(1), To: i(2)}},
		},
		{
			name: "array tail",
			from: value.Array(i(1), i(2), i(3), i(4)),
			to:   value.Array(i(1)),
			want: []Change{
				{Op: OpRemove, Path: "/1", From: i(2)},
				{Op: OpRemove, Path: "/1", From: i(3)},
				{Op: OpRemove, Path: "/1", From: i(4)},
			},
		},
		{
			name: "nil is null",
			from: value.Mapping("a", (*value.Value)(nil)),
			to:   value.Mapping("a", value.Null()),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.from, tt.to)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffArrayByIndex(t *testing.T) {
	from := value.Array(value.FromInt(1), value.FromInt(2), value.FromInt(3))
	to := value.Array(value.FromInt(5))
	want := []Change{
		{Op: OpReplace, Path: "/0", From: value.FromInt(1), To: value.FromInt(5)},
		{Op: OpRemove, Path: "/1", From: value.FromInt(2)},
		{Op: OpRemove, Path: "/1", From: value.FromInt(3)},
	}
	if diff := cmp.Diff(want, diffArrayByIndex(from, to, "")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPatch(t *testing.T) {
	changes := []Change{
		{Op: OpRemove, Path: "/a", From: value.FromInt(1)},
		{Op: OpAdd, Path: "/b", To: value.Null()},
		{Op: OpReplace, Path: "/c/0", From: value.FromInt(1), To: value.Array(value.FromString("x"))},
	}
	got, err := Patch(changes)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"op":"remove","path":"/a"},{"op":"add","path":"/b","value":null},{"op":"replace","path":"/c/0","value":["x"]}]`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := Patch(Diff(value.FromInt(1), value.FromInt(2))); !errors.Is(err, ErrRootChange) {
		t.Errorf("root change: got %v", err)
	}
	if _, err := Patch(Diff(value.Array(), value.Array(value.FromFloat(math.NaN())))); !errors.Is(err, value.ErrUnsupported) {
		t.Errorf("NaN: got %v", err)
	}
}

func TestChangeString(t *testing.T) {
	tests := []struct {
		c    Change
		want string
	}{
		{Change{Op: OpAdd, Path: "/a", To: value.FromInt(1)}, "+ /a: 1"},
		{Change{Op: OpRemove, Path: "/a", From: value.FromString("x")}, `- /a: "x"`},
		{Change{Op: OpReplace, Path: "", From: value.Null(), To: value.Array()}, "~ /: null -> []"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestLines(t *testing.T) {
	got := Lines("a\nb\nc\n", "a\nc\nd\n")
	want := []Line{
		{LineEqual, "a"},
		{LineDelete, "b"},
		{LineEqual, "c"},
		{LineInsert, "d"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Error("Changed = false")
	}
	if Changed(Lines("x\n", "x\n")) {
		t.Error("Changed = true for equal texts")
	}
}
