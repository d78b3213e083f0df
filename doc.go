// Package gogenerators provides pull-based generators: ordinary functions
// that produce a lazy sequence of elements by yielding them one at a time.
//
// A generator is constructed from a producer function, which receives a
// Yielder and calls its Yield method once per element. The producer does not
// run until the first call to Next. Each Next call runs the producer up to
// its next Yield, then suspends it and returns the yielded element to the
// caller. When the producer function returns, the generator is exhausted,
// and every further Next call returns false.
//
// Producers may delegate to other sequences using YieldFrom, which forwards
// every element of an iter.Seq through the same Yielder, as if the producer
// had yielded each element itself. Since a generator exposes its own elements
// as an iter.Seq via All, generators may delegate to other generators, to
// any depth, and the delegated elements are flattened into the outer sequence
// in order.
//
// Generators are always lazy, meaning that a producer will produce a new
// element only after the consumer has consumed the previous one: the handoff
// between producer and consumer is unbuffered, so the producer can never run
// ahead of the consumer. Producers may be infinite; the consumer simply
// stops pulling.
//
// A generator whose producer is suspended holds a goroutine and whatever
// resources the producer has open. Stop tears the producer down, unwinding
// its goroutine so that deferred cleanups run. Ranging over All to
// completion, or breaking out of such a range early, releases the producer
// as well. A producer that never yields and never returns will block its
// consumer's Next call forever; avoiding that is the producer's
// responsibility.
//
// A Generator serves a single consumer. Calling Next concurrently from
// multiple goroutines is misuse, and panics.
package gogenerators
