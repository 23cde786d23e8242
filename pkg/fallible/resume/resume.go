package resume

import (
	"github.com/ib-77/fallible/pkg/fallible"
)

// Point is an always-ready resume point over a single Result. It exists to
// give the coordinator a uniform per-step protocol: check readiness,
// deliver the continuation, poll the value. Nothing here ever waits; every
// continuation runs inline on the caller's stack, in statement order.
type Point[T any] struct {
	res fallible.Result[T]
}

func For[T any](r fallible.Result[T]) Point[T] {
	return Point[T]{res: r}
}

func ForValue[T any](v T) Point[T] {
	return Point[T]{res: fallible.Success(v)}
}

// Ready always reports true: a Point is resolved at the moment it is
// created, so no caller ever blocks on it.
func (p Point[T]) Ready() bool {
	return true
}

// Poll retrieves the step's value. On success it returns the value and
// true; on failure it returns the zero value and false, and the chain must
// not proceed to its next statement. The failure itself stays reachable
// through Abort.
func (p Point[T]) Poll() (T, bool) {
	if p.res.IsSuccess() {
		return p.res.Result(), true
	}
	var zero T
	return zero, false
}

// OnReady invokes cb immediately and synchronously, no deferral and no
// queuing. The Point is always ready, so "registering" a continuation is
// the same as running it inline.
func (p Point[T]) OnReady(cb func()) {
	cb()
}

// Abort returns the original error of a failed step, nil for a successful
// one. The error is the one the step produced, never a wrapper.
func (p Point[T]) Abort() error {
	if p.res.IsSuccess() {
		return nil
	}
	return p.res.Err()
}

func (p Point[T]) Result() fallible.Result[T] {
	return p.res
}
