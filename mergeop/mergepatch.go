package mergeop

import (
	"fmt"

	"github.com/signadot/cram/value"

	jsonpatch "github.com/evanphx/json-patch"
)

var mPatchSym = register(&mPatchSymbol{patchName: mPatchName})

// MergePatch returns the symbol for RFC 7386 JSON Merge Patch documents:
// null removes a key, mappings merge recursively and anything else
// replaces.
func MergePatch() Symbol {
	return mPatchSym
}

const (
	mPatchName patchName = "merge-patch"
)

type mPatchSymbol struct {
	patchName
}

func (s mPatchSymbol) Instance(child *value.Value) (Op, error) {
	d, err := value.ToJSON(child)
	if err != nil {
		return nil, err
	}
	return &mPatchOp{patch: d, op: op{name: s.patchName, child: child}}, nil
}

type mPatchOp struct {
	op
	patch []byte
}

func (mp mPatchOp) Patch(doc *value.Value) (*value.Value, error) {
	d, err := value.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, mp.patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mp, err)
	}
	return value.FromJSON(out)
}
