package gosequences

import "errors"

// ErrSequenceOperated is the error returned by every operation invoked on a
// sequence that has already been operated upon or closed.
var ErrSequenceOperated = errors.New("sequence has already been operated upon or closed")

type sequenceState uint8

const (
	stateOpen sequenceState = iota
	stateClosed
)

// Sequence is a finite ordered collection of elements supporting a single
// traversal. The first terminal operation consumes the sequence; any further
// operation fails with ErrSequenceOperated.
type Sequence[T any] struct {
	state    sequenceState
	slices   [][]T
	channels []<-chan T
}

// FromSlice returns a sequence of the elements of the given slices, in order.
func FromSlice[T any](slices ...[]T) *Sequence[T] {
	return &Sequence[T]{slices: slices}
}

// Of returns a sequence of the given elements, in order.
func Of[T any](elems ...T) *Sequence[T] {
	return FromSlice(elems)
}

// FromChannel returns a sequence of the elements received through the given
// channels, in order. The channels are drained by the terminal operation,
// within the calling goroutine. A short-circuiting operation may leave
// elements unread on the channels.
func FromChannel[T any](channels ...<-chan T) *Sequence[T] {
	return &Sequence[T]{channels: channels}
}

// begin performs the closed check and consumes the sequence. Every terminal
// operation calls it before traversing, so the sequence ends up closed even
// if a callback fails during traversal.
func (s *Sequence[T]) begin() error {
	if s.state != stateOpen {
		return ErrSequenceOperated
	}

	s.state = stateClosed

	return nil
}

// each traverses the sources in order, calling fn with each element and its
// 0-based index. Traversal stops early if fn returns false.
func (s *Sequence[T]) each(fn func(elem T, index uint64) bool) {
	index := uint64(0)

	for _, slice := range s.slices {
		for _, elem := range slice {
			if !fn(elem, index) {
				return
			}

			index++
		}
	}

	for _, ch := range s.channels {
		for elem := range ch {
			if !fn(elem, index) {
				return
			}

			index++
		}
	}
}
