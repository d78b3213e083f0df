package gogenerators

import (
	"context"
	"iter"
	"sync/atomic"
)

// ProducerFunc produces the elements of a generator by calling yield.Yield
// once per element, in order. The elements are produced lazily: each call to
// Yield suspends the producer until the generator is pulled again.
// The producer's sequence ends when the function returns.
type ProducerFunc[T any] func(yield *Yielder[T])

// A Generator is a lazy sequence of elements produced by a ProducerFunc.
// It is created in a suspended state; the producer only starts running on the
// first call to Next.
//
// A Generator is not restartable: once exhausted, a new Generator must be
// constructed from the same producer to replay the sequence.
type Generator[T any] struct {
	producer ProducerFunc[T]

	ctx    context.Context
	cancel context.CancelFunc

	// elems is the handoff channel between the producer goroutine and the
	// consumer. It is unbuffered, so the producer can never deliver an
	// element before the consumer asks for it. It is closed by the producer
	// goroutine when the producer returns or unwinds.
	elems chan T

	// exited is closed once the producer goroutine has fully exited,
	// including its deferred cleanups.
	exited chan struct{}

	started  bool
	finished bool
	panicked error

	inUse atomic.Bool
}

// New returns a generator that produces the elements yielded by producer.
// The producer does not run until the first call to Next.
func New[T any](producer ProducerFunc[T]) *Generator[T] {
	return NewContext(context.Background(), producer)
}

// NewContext is like New, but additionally tears the generator down when ctx
// is canceled: a producer suspended in Yield is unwound, and Next reports
// exhaustion.
func NewContext[T any](ctx context.Context, producer ProducerFunc[T]) *Generator[T] {
	ctx, cancel := context.WithCancel(ctx)

	return &Generator[T]{
		producer: producer,
		ctx:      ctx,
		cancel:   cancel,
		elems:    make(chan T),
		exited:   make(chan struct{}),
	}
}

// Next pulls the next element from the generator.
// On the first call, it starts the producer; on every call, it runs the
// producer up to its next Yield and returns the yielded element and true.
// Once the producer has returned, Next returns the zero value and false,
// on this and every subsequent call.
//
// If the producer panics, Next panics with a *PanicError wrapping the
// producer's panic, and the generator is exhausted afterwards.
//
// Next must not be called concurrently with itself or Stop; doing so panics.
func (g *Generator[T]) Next() (T, bool) {
	if g.inUse.Swap(true) {
		panic("generator used concurrently")
	}
	defer g.inUse.Store(false)

	var zero T

	if g.finished {
		return zero, false
	}

	if !g.started {
		g.started = true
		g.run()
	}

	elem, ok := <-g.elems
	if !ok {
		g.finished = true
		g.cancel()

		if err := g.panicked; err != nil {
			g.panicked = nil
			panic(err)
		}

		return zero, false
	}

	return elem, true
}

// Stop tears the generator down. If the producer is suspended, it is unwound
// so that its deferred cleanups run; Stop returns only after the producer
// goroutine has exited. Afterwards, Next returns false.
//
// Stop is idempotent, and is a no-op on an exhausted or never-started
// generator. Like Next, it must not be called concurrently.
//
// If the producer had panicked and the panic was not yet observed through
// Next, Stop panics with the *PanicError instead of discarding it.
func (g *Generator[T]) Stop() {
	if g.inUse.Swap(true) {
		panic("generator used concurrently")
	}
	defer g.inUse.Store(false)

	if g.finished {
		return
	}

	g.finished = true
	g.cancel()

	if !g.started {
		return
	}

	// The producer may be suspended in Yield with an element ready to hand
	// off; discard elements until it observes the cancelation and unwinds.
	for range g.elems {
	}

	<-g.exited

	if err := g.panicked; err != nil {
		g.panicked = nil
		panic(err)
	}
}

// All returns the generator's elements as an iter.Seq, driving Next under
// the hood. The sequence is a draining view: elements consumed through it
// are gone from the generator, and breaking out of a range over it stops
// the generator, releasing the suspended producer.
func (g *Generator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer g.Stop()

		for {
			elem, ok := g.Next()
			if !ok {
				return
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// run starts the producer goroutine. The deferred close of the handoff
// channel is what turns a producer return, unwind, or panic into exhaustion
// on the consumer side; the panic value, if any, is recorded before the
// close so that Next observes it.
func (g *Generator[T]) run() {
	go func() {
		defer close(g.exited)
		defer close(g.elems)
		defer func() {
			if r := recover(); r != nil && r != errStopped {
				g.panicked = newPanicError(r)
			}
		}()

		g.producer(&Yielder[T]{ctx: g.ctx, elems: g.elems})
	}()
}
