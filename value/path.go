package value

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var ErrPath = errors.New("bad path")

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// GetPath returns the value at a JSON Pointer (RFC 6901) path. The empty
// path is v itself.
func (v *Value) GetPath(path string) (*Value, error) {
	if path == "" {
		return v, nil
	}
	if path[0] != '/' {
		return nil, fmt.Errorf("%w: %q does not start with /", ErrPath, path)
	}
	cur := v
	for _, tok := range strings.Split(path[1:], "/") {
		tok = pointerUnescaper.Replace(tok)
		if cur == nil {
			return nil, fmt.Errorf("%w: %q: no value at %q", ErrPath, path, tok)
		}
		switch cur.Type {
		case MappingType:
			i := slices.Index(cur.Fields, tok)
			if i < 0 {
				return nil, fmt.Errorf("%w: %q: no key %q", ErrPath, path, tok)
			}
			cur = cur.Values[i]
		case ArrayType:
			i, err := strconv.Atoi(tok)
			if err != nil || i < 0 || i >= len(cur.Values) || (len(tok) > 1 && tok[0] == '0') {
				return nil, fmt.Errorf("%w: %q: bad index %q into %d elements", ErrPath, path, tok, len(cur.Values))
			}
			cur = cur.Values[i]
		default:
			return nil, fmt.Errorf("%w: %q: cannot index %s", ErrPath, path, cur.Type)
		}
	}
	return cur, nil
}
