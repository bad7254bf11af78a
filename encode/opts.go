package encode

import (
	"github.com/signadot/cram/cram"
	"github.com/signadot/cram/format"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeWire selects compact single-line JSON.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// EncodeLenient renders values JSON cannot hold as NaN, Infinity,
// -Infinity and undefined instead of failing.
func EncodeLenient(v bool) EncodeOption {
	return func(es *EncState) { es.lenient = v }
}

// EncodeCramOptions passes options to the cram encoder when the format is
// format.CramFormat.
func EncodeCramOptions(opts ...cram.Option) EncodeOption {
	return func(es *EncState) { es.cramOpts = append(es.cramOpts, opts...) }
}
