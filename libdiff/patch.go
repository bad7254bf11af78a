package libdiff

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/cram/value"
)

var ErrRootChange = errors.New("change replaces the whole document")

// Patch renders changes as an RFC 6902 JSON Patch document. A change to the
// root itself yields ErrRootChange, as JSON Patch processors do not
// uniformly support the empty path.
func Patch(changes []Change) ([]byte, error) {
	ops := make([]map[string]any, 0, len(changes))
	for _, c := range changes {
		if c.Path == "" {
			return nil, fmt.Errorf("%w: %s", ErrRootChange, c)
		}
		op := map[string]any{
			"op":   string(c.Op),
			"path": c.Path,
		}
		if c.Op != OpRemove {
			if err := checkJSON(c.To); err != nil {
				return nil, fmt.Errorf("%s: %w", c.Path, err)
			}
			op["value"] = value.ToAny(c.To)
		}
		ops = append(ops, op)
	}
	return json.Marshal(ops)
}

func checkJSON(v *value.Value) error {
	_, err := value.ToJSON(v)
	return err
}
