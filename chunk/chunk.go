package chunk

import "fmt"

// Chunk is a fixed capacity block of T with an explicit count of live elements.
//
// The zero value is a chunk of capacity zero. Use New to get a usable chunk.
// A Chunk is not safe for concurrent use.
type Chunk[T any] struct {
	data   []T
	filled int
}

// New allocates a chunk with capacity zero valued slots and nothing filled.
func New[T any](capacity int) *Chunk[T] {
	return &Chunk[T]{data: make([]T, capacity)}
}

// Filled returns the number of live elements.
func (c *Chunk[T]) Filled() int { return c.filled }

// Capacity returns the fixed number of slots.
func (c *Chunk[T]) Capacity() int { return len(c.data) }

// Room returns the number of elements that can still be pushed or appended.
func (c *Chunk[T]) Room() int { return len(c.data) - c.filled }

func (c *Chunk[T]) IsFull() bool { return c.filled == len(c.data) }
func (c *Chunk[T]) IsEmpty() bool { return c.filled == 0 }

// Live returns the filled window of the backing storage. The returned slice
// aliases the chunk and is only valid until the next mutation. Callers must
// not write through it.
func (c *Chunk[T]) Live() []T {
	return c.data[:c.filled:c.filled]
}

// Get returns the element at index.
func (c *Chunk[T]) Get(index int) (T, error) {
	if index < 0 || index >= c.filled {
		var zero T
		return zero, outOfBounds(index, c.filled)
	}
	return c.data[index], nil
}

// Set overwrites the live element at index. The filled count is unchanged.
func (c *Chunk[T]) Set(index int, value T) error {
	if index < 0 || index >= c.filled {
		return outOfBounds(index, c.filled)
	}
	c.data[index] = value
	return nil
}

// Remove deletes the element at index and returns it. Elements to the right
// of index move one slot left to close the gap.
func (c *Chunk[T]) Remove(index int) (T, error) {
	if index < 0 || index >= c.filled {
		var zero T
		return zero, outOfBounds(index, c.filled)
	}
	removed := c.data[index]
	copy(c.data[index:], c.data[index+1:c.filled])
	c.filled--

	// release the vacated slot so it does not pin a reference
	var zero T
	c.data[c.filled] = zero

	return removed, nil
}

// Insert writes value at index, moving the elements at and after index one
// slot to the right.
//
// When the chunk is not full the filled count grows by one and ok is false.
// When the chunk is full the last element is pushed out of the chunk and
// returned as evicted with ok true; the filled count stays at capacity.
//
// index must be <= Filled() and < Capacity(), otherwise ErrOutOfBounds is
// returned.
func (c *Chunk[T]) Insert(index int, value T) (evicted T, ok bool, err error) {
	if index < 0 || index > c.filled || index >= len(c.data) {
		return evicted, false, outOfBounds(index, c.filled)
	}

	end := c.filled
	if c.filled == len(c.data) {
		evicted, ok = c.data[end-1], true
		end--
	} else {
		c.filled++
	}

	copy(c.data[index+1:end+1], c.data[index:end])
	c.data[index] = value

	return evicted, ok, nil
}

// Pop removes and returns the last live element.
func (c *Chunk[T]) Pop() (T, error) {
	var zero T
	if c.filled == 0 {
		return zero, ErrBufferEmpty
	}
	c.filled--
	value := c.data[c.filled]
	c.data[c.filled] = zero
	return value, nil
}

// Push writes value immediately after the last live element.
func (c *Chunk[T]) Push(value T) error {
	if c.filled == len(c.data) {
		return ErrBufferFilled
	}
	c.data[c.filled] = value
	c.filled++
	return nil
}

// Append copies values into the free tail in one bulk copy. If values does
// not fit the chunk is left unmodified and ErrCantFitSlice is returned.
func (c *Chunk[T]) Append(values []T) error {
	if len(values) > len(c.data)-c.filled {
		return fmt.Errorf("%w: %d elements, room for %d", ErrCantFitSlice, len(values), len(c.data)-c.filled)
	}
	c.AppendUnchecked(values)
	return nil
}

// AppendUnchecked is Append without the capacity check.
//
// The caller must guarantee len(values) <= Room(). Violating that is a
// programming error and panics on the slice bounds.
func (c *Chunk[T]) AppendUnchecked(values []T) {
	c.filled += copy(c.data[c.filled:c.filled+len(values)], values)
}

// Erase forgets every live element in O(1). Storage is not cleared, the stale
// values are simply unreachable.
func (c *Chunk[T]) Erase() {
	c.filled = 0
}
