package gogenerators

import (
	"fmt"
	"runtime/debug"
)

// A PanicError wraps a panic raised inside a producer function, together
// with the stack trace of the producer goroutine at the time of the panic.
// It is re-panicked out of the Next (or Stop) call that observed it.
type PanicError struct {
	value any
	stack []byte
}

func newPanicError(value any) *PanicError {
	return &PanicError{
		value: value,
		stack: debug.Stack(),
	}
}

// Value returns the value the producer panicked with.
func (e *PanicError) Value() any {
	return e.value
}

// Stack returns the producer goroutine's stack trace at the time of the
// panic.
func (e *PanicError) Stack() []byte {
	return e.stack
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("producer panic: %v", e.value)
}

// Unwrap returns the panic value if it is an error, otherwise nil.
func (e *PanicError) Unwrap() error {
	err, ok := e.value.(error)
	if !ok {
		return nil
	}

	return err
}
