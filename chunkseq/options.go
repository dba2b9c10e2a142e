package chunkseq

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

type Options struct {
	// log receives debug lines for chunk allocation, flush and erase. When it
	// is nil nothing is logged.
	log logger.Logger

	// capacityHint is the total number of elements the caller expects to
	// hold. It sizes the chunk list up front, no chunks are allocated.
	capacityHint int
}

// NewOptions creates an Options value from the provided options.
// Typically, this is used for testing as the options values are private
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type Option func(*Options)

func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.log = log
	}
}

// WithCapacityHint reserves room in the chunk list for enough chunks to hold
// capacity elements without growing the list.
func WithCapacityHint(capacity int) Option {
	return func(o *Options) {
		o.capacityHint = capacity
	}
}
