package cram

import "github.com/signadot/cram/abstream"

// Option configures a Writer or Reader.
type Option func(*opts)

type opts struct {
	initialSize int
	maxSize     int
	maxDepth    int
}

func newOpts(options []Option) *opts {
	o := &opts{
		initialSize: abstream.DefaultInitialSize,
		maxSize:     abstream.DefaultMaxSize,
	}
	for _, opt := range options {
		opt(o)
	}
	return o
}

// WithMaxSize caps the size of the encoded document. Encoding a larger
// document fails with ErrResourceExhausted. Non-positive values select
// abstream.DefaultMaxSize.
func WithMaxSize(n int) Option {
	return func(o *opts) {
		if n <= 0 {
			n = abstream.DefaultMaxSize
		}
		o.maxSize = n
	}
}

// WithInitialSize sets the initial size of the encoder's graph buffer.
func WithInitialSize(n int) Option {
	return func(o *opts) { o.initialSize = n }
}

// DefaultMaxDecodeDepth is the nesting limit a Reader applies when
// WithMaxDepth is not given a positive value.
const DefaultMaxDecodeDepth = 10000

// WithMaxDepth limits how many arrays and mappings may be nested inside each
// other, on both encode and decode; exceeding it fails with
// ErrDepthExceeded. With n == 1, [1] is accepted and [[1]] is not. For
// n <= 0 the encoder has no limit and the decoder uses
// DefaultMaxDecodeDepth.
func WithMaxDepth(n int) Option {
	return func(o *opts) { o.maxDepth = n }
}
