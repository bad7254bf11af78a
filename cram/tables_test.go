package cram

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStringTable(t *testing.T) {
	st := newStringTable()
	for i, s := range []string{"a", "b", "a", "", "b", ""} {
		want := []int{0, 1, 0, 2, 1, 2}[i]
		if got := st.indexFor(s); got != want {
			t.Errorf("indexFor(%q) = %d, want %d", s, got, want)
		}
	}
	if diff := cmp.Diff([]string{"a", "b", ""}, st.strings); diff != "" {
		t.Errorf("strings mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemaTable(t *testing.T) {
	st := newSchemaTable()
	tests := []struct {
		keys []string
		want int
	}{
		{[]string{"a", "b"}, 0},
		{[]string{"a"}, 1},
		{[]string{"a", "b"}, 0},
		{[]string{}, 2},
		{nil, 2},
		{[]string{"ab"}, 3},
		{[]string{"a", "b", "c"}, 4},
	}
	for _, tt := range tests {
		if got := st.indexFor(tt.keys); got != tt.want {
			t.Errorf("indexFor(%q) = %d, want %d", tt.keys, got, tt.want)
		}
	}
	if st.len() != 5 {
		t.Errorf("len() = %d, want 5", st.len())
	}
}

func TestSchemaTableCopiesKeys(t *testing.T) {
	st := newSchemaTable()
	keys := []string{"a", "b"}
	st.indexFor(keys)
	keys[0] = "z"
	if got := st.indexFor([]string{"a", "b"}); got != 0 {
		t.Errorf("indexFor after mutation = %d, want 0", got)
	}
}

func TestSchemaTableCollision(t *testing.T) {
	st := newSchemaTable()
	st.hashFn = func([]string) uint64 { return 7 }

	seq := []struct {
		keys []string
		want int
	}{
		{[]string{"a"}, 0},
		{[]string{"b"}, 1},
		{[]string{"a", "b"}, 2},
		{[]string{"b"}, 1},
		{[]string{"a"}, 0},
		{[]string{"a", "b"}, 2},
	}
	for _, s := range seq {
		if got := st.indexFor(s.keys); got != s.want {
			t.Errorf("indexFor(%q) = %d, want %d", s.keys, got, s.want)
		}
	}
	if diff := cmp.Diff([]int{0, 1, 2}, st.buckets[7]); diff != "" {
		t.Errorf("bucket mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemaHashKeyBoundaries(t *testing.T) {
	st := newSchemaTable()
	if st.hash([]string{"ab", "c"}) == st.hash([]string{"a", "bc"}) {
		t.Error("hash ignores key boundaries")
	}
	if st.hash([]string{"a", "b"}) != st.hash([]string{"a", "b"}) {
		t.Error("hash is not deterministic")
	}
}
