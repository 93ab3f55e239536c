package gosequences

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// Optional holds zero or one value. It is the result of Max and Min, which
// have no result on an empty sequence.
type Optional[T any] struct {
	value   T
	present bool
}

// OptionalOf returns an Optional holding value.
func OptionalOf[T any](value T) Optional[T] {
	return Optional[T]{
		value:   value,
		present: true,
	}
}

// EmptyOptional returns an Optional holding no value.
func EmptyOptional[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value, and true if a value is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Present returns true if a value is present.
func (o Optional[T]) Present() bool {
	return o.present
}

// OrElse returns the held value, or fallback if no value is present.
func (o Optional[T]) OrElse(fallback T) T {
	if !o.present {
		return fallback
	}

	return o.value
}

// Max returns the element of the sequence that less ranks highest, or an
// empty Optional if the sequence has no elements.
// If several elements rank equally highest, which of them is returned is
// unspecified; it is only guaranteed to rank equal to the highest.
func (s *Sequence[T]) Max(less LessFunc[T]) (Optional[T], error) {
	var max T

	found := false

	err := s.Each(func(elem T, _ uint64) error {
		if !found || less(max, elem) {
			max = elem
			found = true
		}

		return nil
	})
	if err != nil {
		return EmptyOptional[T](), err
	}

	if !found {
		return EmptyOptional[T](), nil
	}

	return OptionalOf(max), nil
}

// Min returns the element of the sequence that less ranks lowest, or an
// empty Optional if the sequence has no elements.
// If several elements rank equally lowest, which of them is returned is
// unspecified; it is only guaranteed to rank equal to the lowest.
func (s *Sequence[T]) Min(less LessFunc[T]) (Optional[T], error) {
	var min T

	found := false

	err := s.Each(func(elem T, _ uint64) error {
		if !found || less(elem, min) {
			min = elem
			found = true
		}

		return nil
	})
	if err != nil {
		return EmptyOptional[T](), err
	}

	if !found {
		return EmptyOptional[T](), nil
	}

	return OptionalOf(min), nil
}
