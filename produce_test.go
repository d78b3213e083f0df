package gogenerators

import (
	"slices"
	"testing"

	"github.com/matryer/is"
)

func TestOf(t *testing.T) {
	is := is.New(t)

	gen := Of(1, 2, 3, 4, 5)

	is.Equal(slices.Collect(gen.All()), []int{1, 2, 3, 4, 5})
}

func TestOfEmpty(t *testing.T) {
	is := is.New(t)

	gen := Of[int]()

	_, ok := gen.Next()
	is.True(!ok)
}

func TestFromChannel(t *testing.T) {
	is := is.New(t)

	ch1 := make(chan int, 2)
	ch1 <- 1
	ch1 <- 2
	close(ch1)

	ch2 := make(chan int, 3)
	ch2 <- 3
	ch2 <- 4
	ch2 <- 5
	close(ch2)

	gen := FromChannel(ch1, ch2)

	is.Equal(slices.Collect(gen.All()), []int{1, 2, 3, 4, 5})
}

func TestFromChannelStopWhileBlocked(t *testing.T) {
	is := is.New(t)

	ch := make(chan int, 1)
	ch <- 1

	gen := FromChannel(ch)

	elem, ok := gen.Next()
	is.True(ok)
	is.Equal(elem, 1)

	// the producer is now blocked receiving on the open channel; Stop must
	// still release it
	gen.Stop()

	_, ok = gen.Next()
	is.True(!ok)
}
