package sortedlist

import (
	"context"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/sortedlist/pkg/compare"
)

// Validate walks the list in both directions and reports every broken structural invariant.
// Each reported error matches ErrInvariantViolation.
// A list only built through its own methods is always valid.
func (s *Sequence[T, O]) Validate() error {
	if s == nil {
		return nil
	}
	var (
		errs []error
		ord  O
	)
	if (s.head == nil) != (s.tail == nil) || (s.head == nil) != (s.length == 0) {
		errs = append(errs, ErrInvariantViolation.F("head, tail and length (%d) disagree about emptiness", s.length))
	}
	if s.head != nil && s.head.prev != nil {
		errs = append(errs, ErrInvariantViolation.F("head has a previous node"))
	}
	if s.tail != nil && s.tail.next != nil {
		errs = append(errs, ErrInvariantViolation.F("tail has a next node"))
	}

	var forward int
	for n := s.head; n != nil && forward <= s.length; n = n.next {
		index := forward
		forward++
		if n.next == nil {
			if n != s.tail {
				errs = append(errs, ErrInvariantViolation.F("the last node reachable from head is not the tail"))
			}
			continue
		}
		if n.next.prev != n {
			errs = append(errs, ErrInvariantViolation.F("node at %d is not linked back by its successor", index))
		}
		if compare.IsMore(ord.Compare(n.data, n.next.data)) {
			errs = append(errs, ErrInvariantViolation.F("values at %d and %d are out of order", index, index+1))
		}
	}
	if forward != s.length {
		errs = append(errs, ErrInvariantViolation.F("%d nodes are reachable from head, expected %d", forward, s.length))
	}

	var backward int
	for n := s.tail; n != nil && backward <= s.length; n = n.prev {
		backward++
		if n.prev != nil && n.prev.next != n {
			errs = append(errs, ErrInvariantViolation.F("node at %d is not linked forward by its predecessor", s.length-backward))
		}
		if n.prev == nil && n != s.head {
			errs = append(errs, ErrInvariantViolation.F("the first node reachable from tail is not the head"))
		}
	}
	if backward != s.length {
		errs = append(errs, ErrInvariantViolation.F("%d nodes are reachable from tail, expected %d", backward, s.length))
	}
	return errorkit.Merge(errs...)
}

func (s *Sequence[T, O]) mustBeValid(op string) {
	err := s.Validate()
	if err == nil {
		return
	}
	logger.Error(context.Background(), "sorted list invariant violation",
		logging.Field("operation", op),
		logging.Field("length", s.length),
		logging.ErrField(err))
	panic(err)
}
