package cram

import (
	"github.com/signadot/cram/value"
)

// Encode encodes v as a cram document.
func Encode(v *value.Value, options ...Option) ([]byte, error) {
	return NewWriter(options...).WriteGraph(v)
}

// Decode decodes a cram document.
func Decode(data []byte, options ...Option) (*value.Value, error) {
	return NewReader(options...).ReadGraph(data)
}

// Document describes the tables of an encoded document.
type Document struct {
	Version byte
	Strings []string
	// Schemas holds each schema's keys, resolved through Strings.
	Schemas [][]string

	GraphOffset int
	GraphSize   int
}

// Inspect reads the header and tables of data without decoding the object
// graph.
func Inspect(data []byte) (*Document, error) {
	r := NewReader()
	if err := r.readTables(data); err != nil {
		return nil, err
	}
	return &Document{
		Version:     r.version,
		Strings:     r.strings,
		Schemas:     r.schemas,
		GraphOffset: r.r.Offset(),
		GraphSize:   r.r.Remaining(),
	}, nil
}
