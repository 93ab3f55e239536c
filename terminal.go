package gosequences

import "errors"

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem, in traversal order.
// A non-nil error stops the traversal and is returned by Each.
type ConsumerFunc[T any] func(elem T, index uint64) error

// PredicateFunc returns true if elem matches a predicate.
// The index is the 0-based index of elem, in traversal order.
type PredicateFunc[T any] func(elem T, index uint64) bool

// ErrShortCircuit is a generic error used to short-circuit a traversal.
// Returning it from a ConsumerFunc stops the traversal without Each
// reporting a failure.
var ErrShortCircuit = errors.New("short circuit")

// Each calls each for each element of the sequence, in source order.
// If each returns an error, the traversal stops immediately and Each returns
// that error; the sequence remains consumed either way.
func (s *Sequence[T]) Each(each ConsumerFunc[T]) error {
	if err := s.begin(); err != nil {
		return err
	}

	var cause error

	s.each(func(elem T, index uint64) bool {
		cause = each(elem, index)

		return cause == nil
	})

	if errors.Is(cause, ErrShortCircuit) {
		cause = nil
	}

	return cause
}

// AnyMatch returns true as soon as pred returns true for an element of the
// sequence, that is, an element matches. It short-circuits at the first
// match; on an empty sequence it returns false.
func (s *Sequence[T]) AnyMatch(pred PredicateFunc[T]) (bool, error) {
	anyMatch := false

	err := s.Each(func(elem T, index uint64) error {
		if !pred(elem, index) {
			return nil
		}

		anyMatch = true

		return ErrShortCircuit
	})

	return anyMatch, err
}

// AllMatch returns true if pred returns true for all elements of the
// sequence, that is, all elements match. It short-circuits at the first
// non-matching element; on an empty sequence it returns true.
func (s *Sequence[T]) AllMatch(pred PredicateFunc[T]) (bool, error) {
	allMatch := true

	err := s.Each(func(elem T, index uint64) error {
		if pred(elem, index) {
			return nil
		}

		allMatch = false

		return ErrShortCircuit
	})

	return allMatch, err
}

// NoneMatch returns true if pred returns false for all elements of the
// sequence, that is, no element matches. It short-circuits at the first
// matching element; on an empty sequence it returns true.
func (s *Sequence[T]) NoneMatch(pred PredicateFunc[T]) (bool, error) {
	noneMatch := true

	err := s.Each(func(elem T, index uint64) error {
		if !pred(elem, index) {
			return nil
		}

		noneMatch = false

		return ErrShortCircuit
	})

	return noneMatch, err
}

// Count returns the number of elements of the sequence.
// It fails only via the consumed-sequence check.
func (s *Sequence[T]) Count() (uint64, error) {
	count := uint64(0)

	err := s.Each(func(_ T, _ uint64) error {
		count++

		return nil
	})

	return count, err
}
