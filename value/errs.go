package value

import "errors"

var (
	ErrUnsupported  = errors.New("unsupported value")
	ErrDuplicateKey = errors.New("duplicate mapping key")
)
