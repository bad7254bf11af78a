package mergeop

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/cram/libdiff"
	"github.com/signadot/cram/value"
)

func mustJSON(t *testing.T, s string) *value.Value {
	t.Helper()
	v, err := value.FromJSON([]byte(s))
	if err != nil {
		t.Fatalf("FromJSON(%s): %v", s, err)
	}
	return v
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		op    string
		doc   string
		patch string
		want  string
	}{
		{
			name:  "json-patch add and remove",
			op:    "json-patch",
			doc:   `{"a":1,"b":[1,2]}`,
			patch: `[{"op":"remove","path":"/a"},{"op":"add","path":"/b/1","value":"x"}]`,
			want:  `{"b":[1,"x",2]}`,
		},
		{
			name:  "json-patch test and replace",
			op:    "json-patch",
			doc:   `{"a":{"b":true}}`,
			patch: `[{"op":"test","path":"/a/b","value":true},{"op":"replace","path":"/a/b","value":null}]`,
			want:  `{"a":{"b":null}}`,
		},
		{
			name:  "merge-patch",
			op:    "merge-patch",
			doc:   `{"a":1,"b":{"c":2,"d":3}}`,
			patch: `{"a":null,"b":{"c":5},"e":[1]}`,
			want:  `{"b":{"c":5,"d":3},"e":[1]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.op, mustJSON(t, tt.doc), mustJSON(t, tt.patch))
			if err != nil {
				t.Fatal(err)
			}
			want := mustJSON(t, tt.want)
			if !value.Equal(want, got) {
				t.Errorf("got %+v, want %+v", got, want)
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	doc := mustJSON(t, `{"a":1}`)
	if _, err := Apply("strategic", doc, doc); !errors.Is(err, ErrUnknownOp) {
		t.Errorf("unknown op: got %v", err)
	}
	if _, err := Apply("json-patch", doc, mustJSON(t, `{"op":"add"}`)); !errors.Is(err, ErrBadPatch) {
		t.Errorf("bad patch: got %v", err)
	}
	failing := mustJSON(t, `[{"op":"test","path":"/a","value":2}]`)
	if _, err := Apply("json-patch", doc, failing); err == nil {
		t.Error("failed test op did not error")
	}
}

func TestNames(t *testing.T) {
	if diff := cmp.Diff([]string{"json-patch", "merge-patch"}, Names()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if JSONPatch().String() != "json-patch" || MergePatch().String() != "merge-patch" {
		t.Error("symbol names")
	}
}

func TestDiffPatchRoundTrip(t *testing.T) {
	from := mustJSON(t, `{"name":"a","items":[{"id":1},{"id":2},{"id":3}],"drop":true,"keep":[1,2,3]}`)
	to := mustJSON(t, `{"name":"b","items":[{"id":1},{"id":3},{"id":4,"x":null}],"add":{"k":[]},"keep":[0,1,2,3]}`)
	d, err := libdiff.Patch(libdiff.Diff(from, to))
	if err != nil {
		t.Fatal(err)
	}
	patch, err := value.FromJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	got, err := JSONPatch().Instance(patch)
	if err != nil {
		t.Fatal(err)
	}
	res, err := got.Patch(from)
	if err != nil {
		t.Fatalf("apply %s: %v", d, err)
	}
	if !value.Equal(to, res) {
		t.Errorf("round trip mismatch:\npatch %s\ngot %+v", d, res)
	}
}
