package gosequences

import "golang.org/x/exp/slices"

// GeneratorFunc returns a slice for ToSliceFunc to materialize a sequence's
// elements into. size is the number of elements the sequence produced.
type GeneratorFunc[T any] func(size int) []T

// ToSlice materializes the sequence into a new slice, in traversal order.
// The result shares no backing storage with the sequence's sources: mutating
// one never affects the other.
func (s *Sequence[T]) ToSlice() ([]T, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	if len(s.channels) == 0 && len(s.slices) == 1 {
		return slices.Clone(s.slices[0]), nil
	}

	result := []T{}

	s.each(func(elem T, _ uint64) bool {
		result = append(result, elem)

		return true
	})

	return result, nil
}

// ToSliceFunc materializes the sequence into the slice supplied by gen, in
// traversal order. gen receives the number of elements; if the slice it
// returns is too small, a larger one is allocated.
func (s *Sequence[T]) ToSliceFunc(gen GeneratorFunc[T]) ([]T, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	elems := []T{}

	s.each(func(elem T, _ uint64) bool {
		elems = append(elems, elem)

		return true
	})

	result := gen(len(elems))

	return append(result[:0], elems...), nil
}
