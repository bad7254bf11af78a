package mergeop

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/cram/debug"
	"github.com/signadot/cram/value"
)

var (
	ErrUnknownOp = errors.New("unknown patch op")
	ErrBadPatch  = errors.New("bad patch")
)

// Op transforms a document.
type Op interface {
	Patch(doc *value.Value) (*value.Value, error)
	String() string
}

// Symbol names a kind of Op and builds instances of it from a patch
// document.
type Symbol interface {
	String() string
	Instance(patch *value.Value) (Op, error)
}

type patchName string

func (n patchName) String() string { return string(n) }

type op struct {
	name  patchName
	child *value.Value
}

func (o op) String() string {
	return o.name.String()
}

var symbols = map[string]Symbol{}

func register(s Symbol) Symbol {
	symbols[s.String()] = s
	return s
}

// Lookup returns the Symbol with the given name.
func Lookup(name string) (Symbol, error) {
	s, ok := symbols[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, have %v", ErrUnknownOp, name, Names())
	}
	return s, nil
}

// Names returns the names of all symbols in sorted order.
func Names() []string {
	res := make([]string, 0, len(symbols))
	for k := range symbols {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Apply instantiates the named op with patch and applies it to doc.
func Apply(name string, doc, patch *value.Value) (*value.Value, error) {
	s, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	o, err := s.Instance(patch)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("%s op applying %v\n", o, patch)
	}
	return o.Patch(doc)
}
