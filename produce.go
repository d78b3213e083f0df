package gogenerators

import "slices"

// Of returns a generator that produces the given elements, in order.
func Of[T any](elems ...T) *Generator[T] {
	return New(func(yield *Yielder[T]) {
		yield.YieldFrom(slices.Values(elems))
	})
}

// FromChannel returns a generator that produces the elements received
// through the given channels, in order. The generator is exhausted once all
// channels are closed. Stopping it releases the producer even while it is
// blocked on a receive; the channels themselves are left open.
func FromChannel[T any](channels ...<-chan T) *Generator[T] {
	return New(func(yield *Yielder[T]) {
		for _, ch := range channels {
		recv:
			for {
				select {
				case elem, ok := <-ch:
					if !ok {
						break recv
					}

					yield.Yield(elem)

				case <-yield.Context().Done():
					return
				}
			}
		}
	})
}
