package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

type Format int

const (
	CramFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"c":    CramFormat,
		"cram": CramFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case CramFormat:
		return []byte("cram"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsCram() bool { return f == CramFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// IsBinary reports whether documents in f are not text.
func (f Format) IsBinary() bool { return f == CramFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case CramFormat:
		return ".cram"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// FromPath returns the format named by the extension of path. Both ".yaml"
// and ".yml" select YAMLFormat.
func FromPath(path string) (Format, bool) {
	switch filepath.Ext(path) {
	case ".cram":
		return CramFormat, true
	case ".json":
		return JSONFormat, true
	case ".yaml", ".yml":
		return YAMLFormat, true
	}
	return 0, false
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{CramFormat, JSONFormat, YAMLFormat}
}
