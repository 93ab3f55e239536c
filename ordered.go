package gosequences

import "golang.org/x/exp/constraints"

// OrderedSequence is a sequence of naturally ordered elements, such as
// numbers or strings. Its Max and Min need no comparator.
type OrderedSequence[T constraints.Ordered] struct {
	Sequence[T]
}

// FromOrderedSlice returns an ordered sequence of the elements of the given
// slices, in order.
func FromOrderedSlice[T constraints.Ordered](slices ...[]T) *OrderedSequence[T] {
	return &OrderedSequence[T]{
		Sequence: Sequence[T]{slices: slices},
	}
}

// OfOrdered returns an ordered sequence of the given elements, in order.
func OfOrdered[T constraints.Ordered](elems ...T) *OrderedSequence[T] {
	return FromOrderedSlice(elems)
}

// OfInts returns an ordered sequence of the given ints.
func OfInts(elems ...int) *OrderedSequence[int] {
	return OfOrdered(elems...)
}

// OfInt64s returns an ordered sequence of the given int64s.
func OfInt64s(elems ...int64) *OrderedSequence[int64] {
	return OfOrdered(elems...)
}

// OfFloat64s returns an ordered sequence of the given float64s.
func OfFloat64s(elems ...float64) *OrderedSequence[float64] {
	return OfOrdered(elems...)
}

// Max returns the largest element under natural ordering, or an empty
// Optional if the sequence has no elements.
func (s *OrderedSequence[T]) Max() (Optional[T], error) {
	return s.Sequence.Max(func(a T, b T) bool {
		return a < b
	})
}

// Min returns the smallest element under natural ordering, or an empty
// Optional if the sequence has no elements.
func (s *OrderedSequence[T]) Min() (Optional[T], error) {
	return s.Sequence.Min(func(a T, b T) bool {
		return a < b
	})
}
