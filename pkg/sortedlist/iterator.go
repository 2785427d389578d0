package sortedlist

import "iter"

// Iterator walks a list from its smallest to its largest value.
// It is single pass and fails fast:
// once the list is structurally modified, Next returns false and Err reports ErrConcurrentModification.
//
//	it := l.Iterator()
//	defer it.Close()
//	for it.Next() {
//		fmt.Println(it.Value())
//	}
//	if err := it.Err(); err != nil {
//		return err
//	}
type Iterator[T any, O Order[T]] struct {
	list    *Sequence[T, O]
	cursor  *node[T]
	value   T
	version uint64
	done    bool
	err     error
}

// Iterator returns a pull iterator positioned before the first value.
func (s *Sequence[T, O]) Iterator() *Iterator[T, O] {
	it := &Iterator[T, O]{list: s}
	if s != nil {
		it.cursor = s.head
		it.version = s.version
	}
	return it
}

// Next advances to the next value, and reports whether there was one.
// Past the last value it keeps returning false.
func (i *Iterator[T, O]) Next() bool {
	if i.done {
		return false
	}
	if i.list != nil && i.list.version != i.version {
		i.err = ErrConcurrentModification
		i.finish()
		return false
	}
	if i.cursor == nil {
		i.finish()
		return false
	}
	i.value = i.cursor.data
	i.cursor = i.cursor.next
	return true
}

// Value returns the current value.
func (i *Iterator[T, O]) Value() T {
	return i.value
}

// Err returns ErrConcurrentModification when the list was modified during the iteration.
func (i *Iterator[T, O]) Err() error {
	return i.err
}

// Close stops the iteration. It is safe to call it multiple times.
func (i *Iterator[T, O]) Close() error {
	i.finish()
	return nil
}

func (i *Iterator[T, O]) finish() {
	var zero T
	i.done = true
	i.cursor = nil
	i.value = zero
}

// Values returns an iterator for range loops over the values, from the smallest to the largest.
// It panics with ErrConcurrentModification
// when the list is structurally modified before the loop finishes,
// including changes made from the loop body.
// Breaking out of the loop right after a modification is allowed.
func (s *Sequence[T, O]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iterator()
		defer it.Close()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
		if err := it.Err(); err != nil {
			panic(err)
		}
	}
}

// ForEach calls fn with every value, from the smallest to the largest.
// It returns ErrNilAction when fn is nil,
// and ErrConcurrentModification when fn modifies the list.
func (s *Sequence[T, O]) ForEach(fn func(T)) error {
	if fn == nil {
		return ErrNilAction
	}
	it := s.Iterator()
	defer it.Close()
	for it.Next() {
		fn(it.Value())
	}
	return it.Err()
}
