// Package sortedlist implements a doubly linked list that keeps its values in non-decreasing order.
//
// Every insertion places the value where it keeps the list ordered,
// so positional access and iteration always reflect the ordering
// and never the history of insertions.
//
// Lists are not safe for concurrent use.
package sortedlist

import (
	"cmp"
	"fmt"
	"iter"

	"go.llib.dev/sortedlist/pkg/compare"
	"go.llib.dev/sortedlist/port/ds"
)

// Sequence is a sorted doubly linked list, ordered by O.
// The zero value is an empty list ready to use.
type Sequence[T any, O Order[T]] struct {
	head   *node[T]
	tail   *node[T]
	length int
	// version changes with every structural modification.
	version uint64
}

// List is a Sequence of a built-in ordered type.
type List[T cmp.Ordered] = Sequence[T, Natural[T]]

// Of is a Sequence of a type which implements its own ordering.
type Of[T Element[T]] = Sequence[T, Self[T]]

var (
	_ ds.SortedList[int]    = (*List[int])(nil)
	_ ds.SortedList[string] = (*List[string])(nil)
	_ fmt.Stringer          = (*List[int])(nil)
)

// New makes a List from the given values.
func New[T cmp.Ordered](vs ...T) *List[T] {
	var l List[T]
	l.Append(vs...)
	return &l
}

// NewOf makes a list from the given self ordering values.
func NewOf[T Element[T]](vs ...T) *Of[T] {
	var l Of[T]
	l.Append(vs...)
	return &l
}

// Len returns the number of values in the list.
func (s *Sequence[T, O]) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// Add inserts v after every value less than or equal to it.
// The exception is a value which is not greater than the current head,
// that becomes the new head.
func (s *Sequence[T, O]) Add(v T) {
	var (
		ord  O
		elem = newNode(v)
	)
	switch {
	case s.head == nil:
		s.head = elem
		s.tail = elem
	case compare.IsLessOrEqual(ord.Compare(v, s.head.data)):
		elem.next = s.head
		s.head.prev = elem
		s.head = elem
	default:
		current := s.head
		for current.next != nil && compare.IsLessOrEqual(ord.Compare(current.next.data, v)) {
			current = current.next
		}
		elem.prev = current
		elem.next = current.next
		if current.next != nil {
			current.next.prev = elem
		} else {
			s.tail = elem
		}
		current.next = elem
	}
	s.length++
	s.modified("Add")
}

// Append adds every value to the list.
func (s *Sequence[T, O]) Append(vs ...T) {
	for _, v := range vs {
		s.Add(v)
	}
}

// AddAll adds every value yielded by vs, in the order they are yielded.
// A nil iterator is ignored.
//
// Adding a list to itself requires a copy first:
//
//	l.AddAll(slices.Values(l.ToSlice()))
func (s *Sequence[T, O]) AddAll(vs iter.Seq[T]) {
	if vs == nil {
		return
	}
	for v := range vs {
		s.Add(v)
	}
}

// Get returns the value at the zero based index.
// It fails with an *IndexError when index is outside of [0, Len()).
func (s *Sequence[T, O]) Get(index int) (T, error) {
	if err := s.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return s.nodeAt(index).data, nil
}

// Lookup returns the value at the zero based index,
// and reports whether the index was part of the list.
func (s *Sequence[T, O]) Lookup(index int) (T, bool) {
	v, err := s.Get(index)
	return v, err == nil
}

// First returns the smallest value.
func (s *Sequence[T, O]) First() (T, bool) {
	if s.Len() == 0 {
		var zero T
		return zero, false
	}
	return s.head.data, true
}

// Last returns the largest value.
func (s *Sequence[T, O]) Last() (T, bool) {
	if s.Len() == 0 {
		var zero T
		return zero, false
	}
	return s.tail.data, true
}

// RemoveAt removes the value at the zero based index and returns it.
// It fails with an *IndexError when index is outside of [0, Len()).
func (s *Sequence[T, O]) RemoveAt(index int) (T, error) {
	if err := s.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return s.unlink(s.nodeAt(index), "RemoveAt"), nil
}

// RemoveFirst removes the smallest value and returns it.
func (s *Sequence[T, O]) RemoveFirst() (T, error) {
	if s.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.unlink(s.head, "RemoveFirst"), nil
}

// RemoveLast removes the largest value and returns it.
func (s *Sequence[T, O]) RemoveLast() (T, error) {
	if s.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.unlink(s.tail, "RemoveLast"), nil
}

// Shift is like RemoveFirst, but reports an empty list with false.
func (s *Sequence[T, O]) Shift() (T, bool) {
	v, err := s.RemoveFirst()
	return v, err == nil
}

// Pop is like RemoveLast, but reports an empty list with false.
func (s *Sequence[T, O]) Pop() (T, bool) {
	v, err := s.RemoveLast()
	return v, err == nil
}

// Clear removes every value. Clearing an empty list is a no-op.
func (s *Sequence[T, O]) Clear() {
	if s == nil || s.head == nil {
		return
	}
	for n := s.head; n != nil; {
		next := n.next
		n.detach()
		n = next
	}
	s.head = nil
	s.tail = nil
	s.length = 0
	s.modified("Clear")
}

// IndexOf returns the position of the first value equal to v, or -1.
func (s *Sequence[T, O]) IndexOf(v T) int {
	if s == nil {
		return -1
	}
	var (
		ord   O
		index int
	)
	for n := s.head; n != nil; n = n.next {
		if ord.Equal(n.data, v) {
			return index
		}
		index++
	}
	return -1
}

// LastIndexOf returns the position of the last value equal to v, or -1.
func (s *Sequence[T, O]) LastIndexOf(v T) int {
	if s == nil {
		return -1
	}
	var (
		ord   O
		index = s.length - 1
	)
	for n := s.tail; n != nil; n = n.prev {
		if ord.Equal(n.data, v) {
			return index
		}
		index--
	}
	return -1
}

// Contains reports whether a value equal to v is in the list.
func (s *Sequence[T, O]) Contains(v T) bool {
	return 0 <= s.IndexOf(v)
}

// ToSlice returns the values in order.
// The returned slice is not shared with the list.
func (s *Sequence[T, O]) ToSlice() []T {
	if s.Len() == 0 {
		return nil
	}
	vs := make([]T, 0, s.length)
	for n := s.head; n != nil; n = n.next {
		vs = append(vs, n.data)
	}
	return vs
}

// Equal reports whether both lists hold equal values at every position.
// A nil list equals to an empty one.
func (s *Sequence[T, O]) Equal(oth *Sequence[T, O]) bool {
	if s.Len() != oth.Len() {
		return false
	}
	if s.Len() == 0 {
		return true
	}
	var ord O
	for a, b := s.head, oth.head; a != nil && b != nil; a, b = a.next, b.next {
		if !ord.Equal(a.data, b.data) {
			return false
		}
	}
	return true
}

// Hash returns the content hash of the list.
// Equal lists have the same hash.
func (s *Sequence[T, O]) Hash() uint64 {
	var (
		ord  O
		hash uint64 = 1
	)
	if s == nil {
		return hash
	}
	for n := s.head; n != nil; n = n.next {
		hash = 31*hash + ord.Hash(n.data)
	}
	return hash
}

func (s *Sequence[T, O]) String() string {
	return fmt.Sprint(s.ToSlice())
}

func (s *Sequence[T, O]) checkIndex(index int) error {
	if index < 0 || s.Len() <= index {
		return &IndexError{Index: index, Size: s.Len()}
	}
	return nil
}

// nodeAt walks from the closer end of the list.
// index must be within bounds.
func (s *Sequence[T, O]) nodeAt(index int) *node[T] {
	if index < s.length/2 {
		n := s.head
		for ; 0 < index; index-- {
			n = n.next
		}
		return n
	}
	n := s.tail
	for i := s.length - 1; index < i; i-- {
		n = n.prev
	}
	return n
}

func (s *Sequence[T, O]) unlink(n *node[T], op string) T {
	s.length--
	switch {
	case s.length == 0:
		s.head = nil
		s.tail = nil
	case n == s.head:
		s.head = n.next
		s.head.prev = nil
	case n == s.tail:
		s.tail = n.prev
		s.tail.next = nil
	default:
		n.prev.next = n.next
		n.next.prev = n.prev
	}
	n.detach()
	s.modified(op)
	return n.data
}

func (s *Sequence[T, O]) modified(op string) {
	s.version++
	if CheckInvariants {
		s.mustBeValid(op)
	}
}
