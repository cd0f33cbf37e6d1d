package decoding

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrepresentable means a character produced by an encoding's
	// decoder could not be encoded back by the same encoding.
	ErrUnrepresentable = errors.New("decoded character is not representable in its own encoding")

	// ErrStalled means a stepper stopped without consuming its input or
	// reported an offset outside it.
	ErrStalled = errors.New("decoder made no progress")
)

// InvalidInputError is returned by a Stepper at the first byte it cannot
// interpret. Offset is relative to the slice passed to Feed.
type InvalidInputError struct {
	Offset int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input at offset %d", e.Offset)
}
