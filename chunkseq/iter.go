package chunkseq

import (
	"iter"
	"slices"
)

// All returns an iterator over the index and value of every element, in
// order. The sequence must not be modified while iterating.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for _, c := range s.chunks {
			for _, v := range c.Live() {
				if !yield(i, v) {
					return
				}
				i++
			}
		}
		for _, v := range s.buffer.Live() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Values returns an iterator over the elements in order.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// AppendTo appends the content of the sequence to dst, one bulk copy per
// chunk, and returns the extended slice.
func (s *Sequence[T]) AppendTo(dst []T) []T {
	dst = slices.Grow(dst, s.len)
	for _, c := range s.chunks {
		dst = append(dst, c.Live()...)
	}
	return append(dst, s.buffer.Live()...)
}
