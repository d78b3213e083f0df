package gogenerators

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestProducerPanicPropagates(t *testing.T) {
	is := is.New(t)

	gen := New(func(yield *Yielder[int]) {
		yield.Yield(1)

		panic("boom")
	})

	elem, ok := gen.Next()
	is.True(ok)
	is.Equal(elem, 1)

	func() {
		defer func() {
			perr, ok := recover().(*PanicError)
			is.True(ok)
			is.Equal(perr.Value(), "boom")
			is.True(strings.Contains(perr.Error(), "boom"))
			is.True(len(perr.Stack()) > 0)
		}()

		gen.Next()
	}()

	_, ok = gen.Next()
	is.True(!ok)
}

func TestProducerPanicBeforeFirstYield(t *testing.T) {
	is := is.New(t)

	gen := New(func(yield *Yielder[int]) {
		panic("boom")
	})

	func() {
		defer func() {
			_, ok := recover().(*PanicError)
			is.True(ok)
		}()

		gen.Next()
	}()

	_, ok := gen.Next()
	is.True(!ok)
}

func TestProducerPanicUnwrapsError(t *testing.T) {
	is := is.New(t)

	errProducer := errors.New("producer failed")

	gen := New(func(yield *Yielder[int]) {
		panic(errProducer)
	})

	func() {
		defer func() {
			perr, ok := recover().(*PanicError)
			is.True(ok)
			is.True(errors.Is(perr, errProducer))
		}()

		gen.Next()
	}()
}

func TestStopPropagatesUnobservedPanic(t *testing.T) {
	is := is.New(t)

	gen := New(func(yield *Yielder[int]) {
		yield.Yield(1)

		panic("boom")
	})

	elem, ok := gen.Next()
	is.True(ok)
	is.Equal(elem, 1)

	func() {
		defer func() {
			perr, ok := recover().(*PanicError)
			is.True(ok)
			is.Equal(perr.Value(), "boom")
		}()

		gen.Stop()
	}()

	_, ok = gen.Next()
	is.True(!ok)
}

func TestProducerDefersRunOnPanic(t *testing.T) {
	is := is.New(t)

	released := false

	gen := New(func(yield *Yielder[int]) {
		defer func() {
			released = true
		}()

		yield.Yield(1)

		panic("boom")
	})

	gen.Next()

	func() {
		defer func() {
			recover()
		}()

		gen.Next()
	}()

	is.True(released)
}
