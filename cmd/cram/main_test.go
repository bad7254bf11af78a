package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/cram/cram"
	"github.com/signadot/cram/format"
	"github.com/signadot/cram/value"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		path string
		in   []byte
		want format.Format
	}{
		{"magic wins", "x.json", []byte{0x59, 0x63, 0x72, 0x01, 0x00, 0x00, 0xc0}, format.CramFormat},
		{"json suffix", "x.json", []byte("a: 1"), format.JSONFormat},
		{"yml suffix", "x.yml", []byte(`{"a":1}`), format.YAMLFormat},
		{"stdin json", "-", []byte(`{"a": [1, 2]}`), format.JSONFormat},
		{"stdin yaml", "-", []byte("a:\n  - 1\n"), format.YAMLFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectFormat(tt.path, tt.in); got != tt.want {
				t.Errorf("detectFormat(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestInOutFormat(t *testing.T) {
	y := format.YAMLFormat
	cfg := &MainConfig{J: true}
	if got := cfg.inFormat("x.yaml", []byte("a: 1")); got != format.JSONFormat {
		t.Errorf("-j inFormat = %s", got)
	}
	cfg.InFormat = &y
	if got := cfg.inFormat("x.json", []byte("{}")); got != format.YAMLFormat {
		t.Errorf("-I inFormat = %s", got)
	}
	if got := cfg.outFormat(format.CramFormat); got != format.JSONFormat {
		t.Errorf("-j outFormat = %s", got)
	}
	if got := (&MainConfig{}).outFormat(format.CramFormat); got != format.CramFormat {
		t.Errorf("default outFormat = %s", got)
	}
}

func TestStatDoc(t *testing.T) {
	v := value.FromSlice([]*value.Value{
		value.Mapping("a", value.FromInt(1), "b", value.FromString("x")),
		value.Mapping("b", value.FromString("y"), "a", value.FromInt(2)),
	})
	d, err := cram.Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	st, err := statDoc(v, d, true)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]any{}
	for _, k := range []string{"version", "size", "strings", "schemas", "values", "jsonSize"} {
		got[k] = value.ToAny(st.Get(k))
	}
	want := map[string]any{
		"version":  1,
		"size":     len(d),
		"strings":  4,
		"schemas":  1,
		"values":   7,
		"jsonSize": len(`[{"a":1,"b":"x"},{"a":2,"b":"y"}]`),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stat mismatch (-want +got):\n%s", diff)
	}
	wantTables := []any{"x", "y", "a", "b"}
	if diff := cmp.Diff(wantTables, value.ToAny(st.Get("stringTable"))); diff != "" {
		t.Errorf("string table mismatch (-want +got):\n%s", diff)
	}
	if _, err := statDoc(v, []byte("{}"), false); !errors.Is(err, cram.ErrFormat) {
		t.Errorf("stat of json: got %v, want ErrFormat", err)
	}
}

func TestVerifyDoc(t *testing.T) {
	v := value.Mapping("b", value.FromFloat(1.5), "a", value.FromString("s"))
	enc, err := cram.Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		v    *value.Value
		d    []byte
		f    format.Format
		ok   bool
	}{
		{"json", v, []byte(`{"b":1.5,"a":"s"}`), format.JSONFormat, true},
		{"cram", v, enc, format.CramFormat, true},
		{"cram not canonical", v, append(enc[:len(enc):len(enc)], 0x00), format.CramFormat, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			ok, err := verifyDoc(buf, nil, tt.v, tt.d, tt.f)
			if err != nil {
				t.Fatal(err)
			}
			if ok != tt.ok {
				t.Errorf("verifyDoc = %t, want %t (output %q)", ok, tt.ok, buf.String())
			}
		})
	}
}

func TestDiffDocs(t *testing.T) {
	a := value.Mapping("a", value.FromInt(1), "b", value.FromInt(2))
	b := value.Mapping("a", value.FromInt(1), "c", value.FromInt(3))
	tests := []struct {
		name string
		cfg  DiffConfig
		want string
	}{
		{"changes", DiffConfig{}, "- /b: 2\n+ /c: 3\n"},
		{"patch", DiffConfig{Patch: true},
			`[{"op":"remove","path":"/b"},{"op":"add","path":"/c","value":3}]` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.MainConfig = &MainConfig{}
			buf := bytes.NewBuffer(nil)
			differs, err := diffDocs(&cfg, buf, a, b)
			if err != nil {
				t.Fatal(err)
			}
			if !differs {
				t.Error("documents reported equal")
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}

	cfg := &DiffConfig{MainConfig: &MainConfig{}, Lines: true}
	buf := bytes.NewBuffer(nil)
	differs, err := diffDocs(cfg, buf, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !differs || !strings.Contains(buf.String(), `+   "c": 3`) {
		t.Errorf("line diff %q", buf.String())
	}
	differs, err = diffDocs(&DiffConfig{MainConfig: &MainConfig{}}, buf, a, a.Clone())
	if err != nil || differs {
		t.Errorf("equal documents: differs=%t err=%v", differs, err)
	}
}

func TestPatchOpName(t *testing.T) {
	tests := []struct {
		cfg  PatchConfig
		want string
		err  error
	}{
		{PatchConfig{}, "json-patch", nil},
		{PatchConfig{Merge: true}, "merge-patch", nil},
		{PatchConfig{Op: "merge-patch"}, "merge-patch", nil},
		{PatchConfig{Op: "nope"}, "", cli.ErrUsage},
		{PatchConfig{Merge: true, Op: "json-patch"}, "", cli.ErrUsage},
	}
	for _, tt := range tests {
		got, err := tt.cfg.opName()
		if !errors.Is(err, tt.err) {
			t.Errorf("%+v: got error %v, want %v", tt.cfg, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("%+v: got %q, want %q", tt.cfg, got, tt.want)
		}
	}
}
