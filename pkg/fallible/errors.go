package fallible

import (
	"fmt"
	"runtime"
)

// PanicError wraps a recovered panic value together with the goroutine
// stack trace captured at the point of recovery. Call converts panics in
// step functions to *PanicError and returns them as regular failures.
type PanicError struct {
	// Value is the original value passed to panic(), untouched.
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error, so that
// errors.Is/As reach the original fault through the wrapper.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// NewPanicError captures the current goroutine stack and wraps a recovered
// panic value. Intended for recover handlers that convert panics into
// failures.
func NewPanicError(v any) *PanicError {
	// 8 KiB is enough for most stack traces. runtime.Stack truncates
	// gracefully if the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}

// Cause strips a *PanicError wrapper and returns the error the failing
// step actually raised. Non-panic errors are returned as-is.
func Cause(err error) error {
	if err == nil {
		return nil
	}

	if pe, ok := err.(*PanicError); ok {
		if inner := pe.Unwrap(); inner != nil {
			return inner
		}
	}

	return err
}
