package sortedlist

import (
	"fmt"

	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/sortedlist/port/ds"
)

const (
	ErrIndexOutOfBounds = ds.ErrIndexOutOfBounds
	ErrEmpty            = ds.ErrEmpty

	ErrNilAction              errorkit.Error = "nil action function"
	ErrConcurrentModification errorkit.Error = "the list was modified during iteration"
	ErrInvariantViolation     errorkit.Error = "sorted list invariant violation"
)

// IndexError is returned for positional access outside of [0, Size).
// It matches ErrIndexOutOfBounds with errors.Is.
type IndexError struct {
	Index int
	Size  int
}

func (err *IndexError) Error() string {
	if err.Index < 0 {
		return fmt.Sprintf("%s: index %d can not be a negative number", ErrIndexOutOfBounds, err.Index)
	}
	return fmt.Sprintf("%s: index %d is out of range for size %d", ErrIndexOutOfBounds, err.Index, err.Size)
}

func (err *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}
