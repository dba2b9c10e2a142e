package chunkseq

import (
	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/forestrie/go-chunkseq/chunk"
)

// Sequence is a growable, indexable sequence stored as a list of fixed size
// chunks plus one staging buffer for the most recently pushed elements.
//
// Logically the content is the chunk region followed by the buffer:
//
//	chunks[0] ... chunks[frontier] | buffer
//	[ full ][ full ][ partial ]      [ tail ]
//
// Every chunk before the frontier is full, so the first element of chunk k is
// at logical index k * bufferSize. Chunks after the frontier are empty and
// are kept for reuse.
//
// A Sequence is not safe for concurrent use.
type Sequence[T any] struct {
	chunks        []*chunk.Chunk[T]
	buffer        *chunk.Chunk[T]
	maxBufferSize int

	// frontier is the index of the rightmost chunk holding any element. Only
	// meaningful when chunks is not empty.
	frontier int
	len      int

	// set when maxBufferSize is a power of two
	pow2  bool
	shift uint
	mask  int

	log logger.Logger
}

// New creates an empty sequence whose chunks, and staging buffer, each hold
// bufferSize elements.
func New[T any](bufferSize int, opts ...Option) (*Sequence[T], error) {
	if err := CheckBufferSize(bufferSize); err != nil {
		return nil, err
	}
	o := NewOptions(opts...)
	if o.capacityHint < 0 {
		return nil, ErrBadCapacityHint
	}

	s := &Sequence[T]{
		buffer:        chunk.New[T](bufferSize),
		maxBufferSize: bufferSize,
		log:           o.log,
	}
	if o.capacityHint > 0 {
		s.chunks = make([]*chunk.Chunk[T], 0, ChunksFor(o.capacityHint, bufferSize))
	}
	if IsPow2(uint(bufferSize)) {
		s.pow2 = true
		s.shift = uint(Log2(uint64(bufferSize)))
		s.mask = bufferSize - 1
	}
	return s, nil
}

// WithCapacity is New with the chunk list reserved for capacity elements.
// It is a hint only, no chunks are allocated until they are needed.
func WithCapacity[T any](bufferSize, capacity int, opts ...Option) (*Sequence[T], error) {
	return New[T](bufferSize, append(opts, WithCapacityHint(capacity))...)
}

// Len returns the number of elements in the sequence.
func (s *Sequence[T]) Len() int { return s.len }

// BufferSize returns the fixed capacity shared by the buffer and every chunk.
func (s *Sequence[T]) BufferSize() int { return s.maxBufferSize }

// Chunks returns the number of allocated chunks, not counting the buffer.
func (s *Sequence[T]) Chunks() int { return len(s.chunks) }

// Capacity returns the number of elements the allocated chunks and the buffer
// can hold together.
func (s *Sequence[T]) Capacity() int {
	return len(s.chunks)*s.maxBufferSize + s.maxBufferSize
}

// Push appends value to the end of the sequence. When the buffer is full it
// is flushed into the chunk list first, so one push in every bufferSize pays
// for an O(bufferSize) move.
func (s *Sequence[T]) Push(value T) {
	if s.buffer.IsFull() {
		s.flush()
	}
	if err := s.buffer.Push(value); err != nil {
		// a flush always leaves the buffer empty
		panic(err)
	}
	s.len++
}

// Pop removes and returns the last element. ok is false when the sequence is
// empty.
func (s *Sequence[T]) Pop() (value T, ok bool) {
	if v, err := s.buffer.Pop(); err == nil {
		s.len--
		return v, true
	}

	if len(s.chunks) == 0 {
		return value, false
	}
	c := s.chunks[s.frontier]
	v, err := c.Pop()
	if err != nil {
		return value, false
	}
	s.len--

	if c.IsEmpty() && s.frontier != 0 {
		s.frontier--
	}
	return v, true
}

// Get returns the element at index. ok is false when index is not in
// [0, Len()).
func (s *Sequence[T]) Get(index int) (value T, ok bool) {
	c, offset, ok := s.locate(index)
	if !ok {
		return value, false
	}
	v, err := c.Get(offset)
	if err != nil {
		return value, false
	}
	return v, true
}

// Set overwrites the element at index. It reports false, and changes nothing,
// when index is not in [0, Len()).
func (s *Sequence[T]) Set(index int, value T) bool {
	c, offset, ok := s.locate(index)
	if !ok {
		return false
	}
	return c.Set(offset, value) == nil
}

// Last returns the element Pop would remove, without removing it.
func (s *Sequence[T]) Last() (T, bool) {
	return s.Get(s.len - 1)
}

// Erase empties the sequence. Chunks and the buffer are kept and reused by
// later pushes.
func (s *Sequence[T]) Erase() {
	s.len = 0
	s.frontier = 0
	s.buffer.Erase()
	for _, c := range s.chunks {
		c.Erase()
	}
	if s.log != nil {
		s.log.Debugf("chunkseq: erased, %d chunks retained", len(s.chunks))
	}
}

// locate resolves a logical index to the chunk holding it and the offset in
// that chunk.
func (s *Sequence[T]) locate(index int) (*chunk.Chunk[T], int, bool) {
	if index < 0 || index >= s.len {
		return nil, 0, false
	}

	chunkRegion := s.len - s.buffer.Filled()
	if index >= chunkRegion {
		return s.buffer, index - chunkRegion, true
	}

	if s.pow2 {
		return s.chunks[index>>s.shift], index & s.mask, true
	}
	return s.chunks[index/s.maxBufferSize], index % s.maxBufferSize, true
}
