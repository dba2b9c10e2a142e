package chunk

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds  = errors.New("chunk: index out of bounds")
	ErrBufferEmpty  = errors.New("chunk: buffer is empty")
	ErrBufferFilled = errors.New("chunk: buffer is filled")
	ErrCantFitSlice = errors.New("chunk: the slice is too big to fit")
)

func outOfBounds(index, bound int) error {
	return fmt.Errorf("%w: index %d, bound %d", ErrOutOfBounds, index, bound)
}
