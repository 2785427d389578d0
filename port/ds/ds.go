// Package ds contains common interfaces when we wish to express datastruct behaviours
package ds

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ErrIndexOutOfBounds errorkit.Error = "index out of bounds"
	ErrEmpty            errorkit.Error = "the container is empty"
)

type ReadOnlyList[T any] interface {
	Values[T]
}

type List[T any] interface {
	ReadOnlyList[T]
	Appendable[T]
}

type ReadOnlySequence[T any] interface {
	ReadOnlyList[T]
	Lookup(index int) (T, bool)
}

// SortedList is a sequence that keeps its values in non-decreasing order,
// regardless of the order they were added in.
// Positional access reflects the ordering, not the insertion history.
type SortedList[T any] interface {
	ReadOnlySequence[T]
	List[T]
	Len
	Containable[T]
	Indexable[T]
	Deque[T]
	SliceConveratble[T]
	// Add inserts the value at the position which keeps the list ordered.
	Add(v T)
	// Get returns the value at index, or an error wrapping ErrIndexOutOfBounds.
	Get(index int) (T, error)
	// RemoveAt removes the value at index, or returns an error wrapping ErrIndexOutOfBounds.
	RemoveAt(index int) (T, error)
	Clear()
}

type Len interface {
	Len() int
}

type Appendable[T any] interface {
	Append(vs ...T)
}

type Containable[T any] interface {
	Contains(element T) bool
}

type Indexable[T any] interface {
	// IndexOf returns the position of the first equal element, or -1.
	IndexOf(element T) int
	// LastIndexOf returns the position of the last equal element, or -1.
	LastIndexOf(element T) int
}

// Deque removes values from either end of a container.
// Both methods fail with ErrEmpty when there is nothing to remove.
type Deque[T any] interface {
	RemoveFirst() (T, error)
	RemoveLast() (T, error)
}

type Values[T any] interface {
	Values() iter.Seq[T]
}

type SliceConveratble[T any] interface {
	ToSlice() []T
}
