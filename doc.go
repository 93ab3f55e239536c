// Package gosequences provides one-shot sequences of elements with terminal
// operations.
//
// A Sequence wraps a finite ordered source, such as one or more slices or
// channels. It supports exactly one terminal operation: the first operation
// consumes the sequence, and any further operation fails with
// ErrSequenceOperated. To traverse the same source again, construct a new
// sequence.
//
// Terminal operations either produce a result (Count, Max, Min, AllMatch,
// AnyMatch, NoneMatch, ToSlice, ToSliceFunc) or only a side effect (Each).
// The matching operations short-circuit, meaning that traversal stops as soon
// as the outcome is determined. Max and Min return an Optional, which is
// empty when the sequence has no elements.
//
// Sequences of naturally ordered elements, such as the numeric types, can be
// constructed as an OrderedSequence, whose Max and Min need no comparator.
//
// Traversal is always synchronous: a terminal operation consumes the source
// within the calling goroutine before returning.
package gosequences
