package mergeop

import (
	"fmt"

	"github.com/signadot/cram/value"

	jsonpatch "github.com/evanphx/json-patch"
)

var jPatchSym = register(&jPatchSymbol{patchName: jPatchName})

// JSONPatch returns the symbol for RFC 6902 JSON Patch documents.
func JSONPatch() Symbol {
	return jPatchSym
}

const (
	jPatchName patchName = "json-patch"
)

type jPatchSymbol struct {
	patchName
}

func (s jPatchSymbol) Instance(child *value.Value) (Op, error) {
	d, err := value.ToJSON(child)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPatch, err)
	}
	return &jPatchOp{ops: ops, op: op{name: s.patchName, child: child}}, nil
}

type jPatchOp struct {
	op
	ops jsonpatch.Patch
}

// Patch applies the operations in order. Mapping keys of the result are
// in sorted order.
func (jp jPatchOp) Patch(doc *value.Value) (*value.Value, error) {
	d, err := value.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	jOut, err := jp.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", jp, err)
	}
	return value.FromJSON(jOut)
}
