package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/cram/encode"
	"github.com/signadot/cram/value"
)

type Op string

const (
	OpAdd     Op = "add"
	OpRemove  Op = "remove"
	OpReplace Op = "replace"
)

// Change is a single edit at a JSON Pointer path. From is nil for OpAdd and
// To is nil for OpRemove.
type Change struct {
	Op   Op
	Path string
	From *value.Value
	To   *value.Value
}

func (c Change) String() string {
	path := c.Path
	if path == "" {
		path = "/"
	}
	switch c.Op {
	case OpAdd:
		return fmt.Sprintf("+ %s: %s", path, encode.MustString(c.To))
	case OpRemove:
		return fmt.Sprintf("- %s: %s", path, encode.MustString(c.From))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", path, encode.MustString(c.From), encode.MustString(c.To))
	}
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func child(path, key string) string {
	return path + "/" + pointerEscaper.Replace(key)
}
