package gogenerators

import (
	"context"
	"errors"
	"iter"
)

// errStopped unwinds a producer goroutine whose generator has been stopped.
// It never escapes the package: the generator's recovery wrapper swallows it.
var errStopped = errors.New("generator stopped")

// A Yielder passes a producer's elements to the consumer of its Generator.
//
// A Yielder is only valid inside the producer it was passed to. It must not
// be retained past the producer's return, and must not be called from any
// other goroutine.
type Yielder[T any] struct {
	ctx   context.Context
	elems chan<- T
}

// Context returns a context that is canceled when the generator is stopped
// or exhausted. Producers that block outside of Yield, such as on channel
// receives or I/O, should watch it so that Stop does not hang on them.
func (y *Yielder[T]) Context() context.Context {
	return y.ctx
}

// Yield hands elem to the consumer and suspends the producer until the
// generator is pulled again.
//
// If the generator has been stopped, or its context canceled, Yield does not
// return: it unwinds the producer goroutine, running the producer's deferred
// cleanups.
func (y *Yielder[T]) Yield(elem T) {
	if contextDone(y.ctx) {
		panic(errStopped)
	}

	select {
	case y.elems <- elem:

	case <-y.ctx.Done():
		panic(errStopped)
	}
}

// YieldFrom yields every element of seq, in seq's order, exactly as if the
// producer had called Yield on each element itself. Once seq is exhausted,
// YieldFrom returns and the producer continues; there is no extra suspension
// at the boundary.
//
// seq may be any sequence: a slice viewed through slices.Values, a Range,
// or another generator's All. A delegated generator may itself delegate,
// to any depth; the elements are flattened into the outer sequence in order.
func (y *Yielder[T]) YieldFrom(seq iter.Seq[T]) {
	for elem := range seq {
		y.Yield(elem)
	}
}
