package cram

import (
	"errors"

	"github.com/signadot/cram/abstream"
)

var (
	ErrFormat          = errors.New("bad cram format")
	ErrUnsupportedType = errors.New("unsupported type")
	ErrIndexRange      = errors.New("table index out of range")
	ErrDepthExceeded   = errors.New("maximum nesting depth exceeded")
	ErrInvalidValue    = errors.New("invalid value")

	ErrResourceExhausted = abstream.ErrMaxSize
	ErrTruncated         = abstream.ErrShortRead
)
