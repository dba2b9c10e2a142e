package chunkseq

import "errors"

var (
	ErrBadBufferSize   = errors.New("chunkseq: buffer size must be greater than zero")
	ErrBadCapacityHint = errors.New("chunkseq: capacity hint must not be negative")
)
