package chunkseq

import "math/bits"

// CheckBufferSize validates the per chunk capacity of a sequence.
func CheckBufferSize(bufferSize int) error {
	if bufferSize <= 0 {
		return ErrBadBufferSize
	}
	return nil
}

// ChunksFor returns the number of chunks of bufferSize needed to hold capacity
// elements: ceil(capacity / bufferSize).
//
// The caller is responsible for ensuring bufferSize > 0, CheckBufferSize can
// be used to check this.
func ChunksFor(capacity, bufferSize int) int {
	n := capacity / bufferSize
	if capacity%bufferSize != 0 {
		n++
	}
	return n
}

// IsPow2 determines if size is a perfect power of 2.
func IsPow2(size uint) bool {
	return bits.OnesCount(size) == 1
}

// Log2 computes floor(log2(num)). num must be > 0.
func Log2(num uint64) uint64 {
	return uint64(bits.Len64(num) - 1)
}
