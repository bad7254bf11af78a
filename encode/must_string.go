package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/cram/format"
	"github.com/signadot/cram/value"
)

// MustString renders v as compact JSON, panicking on error.
func MustString(v *value.Value) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, EncodeFormat(format.JSONFormat), EncodeWire(true), EncodeLenient(true)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
