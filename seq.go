package gogenerators

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Range returns a sequence of the integers from start (inclusive) to end
// (exclusive). It is a plain sequence, not a generator; it is cheap to
// construct and may be ranged over, or delegated to with YieldFrom, any
// number of times.
func Range[T constraints.Integer](start, end T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Equal reports whether a and b produce equal elements, pairwise and in
// order. Sequences of different lengths are not equal.
//
// Both sequences are driven lazily, one element at a time, and no further
// than the first mismatch; generators compared through All are stopped
// when Equal returns early.
func Equal[T comparable](a, b iter.Seq[T]) bool {
	next, stop := iter.Pull(b)
	defer stop()

	for elem := range a {
		other, ok := next()
		if !ok || other != elem {
			return false
		}
	}

	_, ok := next()

	return !ok
}
