package abstream

import "errors"

var (
	ErrShortRead = errors.New("short read")
	ErrMaxSize   = errors.New("maximum stream size reached")
	ErrSeek      = errors.New("seek out of range")
)
