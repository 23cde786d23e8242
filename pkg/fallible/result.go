package fallible

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is a two-state tagged union: a success carrying a value of type T
// or a failure carrying the error that caused it. Exactly one of the two is
// meaningful; a Result is immutable once constructed and may be read any
// number of times.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	hasResult bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		hasResult: true,
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		hasResult: false,
		id:        uuid.New(),
	}
}

// FailFrom carries a failure across a type boundary. The error keeps its
// identity; id and creation time travel with it.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		hasResult: false,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports whether r is the zero Result, which is neither a success
// nor a failure. Operations treat it as a contract violation by the caller.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// String renders the value's own display form on success, or the original
// error message prefixed with "Error: " on failure. No wrapper types ever
// appear in the rendering.
func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("%v", r.result)
	}
	return fmt.Sprintf("Error: %v", r.err)
}
