package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/cram/value"
)

// Logf writes a formatted message to stderr. *value.Value arguments and
// JSON-like Go values are rendered as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *value.Value:
			d, err := marshalValue(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *value.Value] %v", x)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func marshalValue(v *value.Value) (d []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return json.MarshalIndent(value.ToAny(v), "   |", "  ")
}
