package seq

import (
	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/solo"
)

// Seq is a fluent chain over Result[T]. Each operation runs only if the
// chain is still successful; the first failure becomes the chain's final
// outcome and every later step is skipped.
type Seq[T any] struct {
	res fallible.Result[T]
	obs Observer
}

func From[T any](r fallible.Result[T]) Seq[T] {
	return Seq[T]{res: r}
}

func FromValue[T any](v T) Seq[T] {
	return From(fallible.Success(v))
}

// WithObserver sets the progress sink used by Observe. The sink is never
// invoked for a failed chain.
func (s Seq[T]) WithObserver(obs Observer) Seq[T] {
	return Seq[T]{res: s.res, obs: obs}
}

func (s Seq[T]) Result() fallible.Result[T] {
	return s.res
}

// Then composes functions that already return Result[T]
func (s Seq[T]) Then(onSuccess func(t T) fallible.Result[T]) Seq[T] {
	if s.res.IsFailure() {
		return s
	}
	return Seq[T]{res: onSuccess(s.res.Result()), obs: s.obs}
}

// ThenTry composes functions that return (T, error); errors and panics
// become failures
func (s Seq[T]) ThenTry(try func(t T) (T, error)) Seq[T] {
	if s.res.IsFailure() {
		return s
	}
	return Seq[T]{res: solo.Try(s.res, try), obs: s.obs}
}

// Map transforms the successful value to a new value
func (s Seq[T]) Map(onSuccess func(t T) T) Seq[T] {
	if s.res.IsFailure() {
		return s
	}
	return Seq[T]{res: fallible.Success(onSuccess(s.res.Result())), obs: s.obs}
}

// Check fails the chain when maybeErr reports an error for the current value
func (s Seq[T]) Check(maybeErr func(t T) error) Seq[T] {
	return Seq[T]{res: solo.FailOnError(s.res, maybeErr), obs: s.obs}
}

func (s Seq[T]) RepeatUntil(onSuccess func(t T) fallible.Result[T],
	until func(t T) bool) Seq[T] {

	if s.res.IsFailure() {
		return s
	}

	for {
		s = s.Then(onSuccess)

		if s.res.IsFailure() || until(s.res.Result()) {
			return s
		}
	}
}

func (s Seq[T]) While(onSuccess func(t T) fallible.Result[T],
	while func(t T) bool) Seq[T] {

	for !s.res.IsFailure() && while(s.res.Result()) {
		s = s.Then(onSuccess)
	}
	return s
}

// Or picks the first successful chain; with no success, the first failure
func (s Seq[T]) Or(alternative Seq[T]) Seq[T] {
	if s.res.IsSuccess() {
		return s
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return s
}

// And requires both chains to succeed; the first failure wins
func (s Seq[T]) And(required Seq[T]) Seq[T] {
	if s.res.IsFailure() {
		return s
	}
	return required
}

// Ensure triggers side effects for success/failure without changing the result
func (s Seq[T]) Ensure(onSuccess func(T), onFailure func(error)) Seq[T] {

	if s.res.IsFailure() {
		if onFailure != nil {
			onFailure(s.res.Err())
		}
		return s
	}

	if onSuccess != nil {
		onSuccess(s.res.Result())
	}
	return s
}

// Observe reports the named step to the chain's observer. It fires only
// while the chain is successful, so a sink never sees steps past the
// first failure.
func (s Seq[T]) Observe(step string) Seq[T] {
	if s.obs != nil && s.res.IsSuccess() {
		s.obs(step, s.res.String())
	}
	return s
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (s Seq[T]) Finally(
	onSuccess func(T) T,
	onFailure func(error) T,
) T {
	return solo.Finally(s.res, onSuccess, onFailure)
}

// Then chains a function that switches the chain to a new value type
func Then[T, U any](s Seq[T], onSuccess func(T) fallible.Result[U]) Seq[U] {
	return Seq[U]{
		res: solo.Switch(s.res, onSuccess),
		obs: s.obs,
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](s Seq[T], tryOnSuccess func(T) (U, error)) Seq[U] {
	return Seq[U]{
		res: solo.Try(s.res, tryOnSuccess),
		obs: s.obs,
	}
}

// Map chains a pure transformation function
func Map[T, U any](s Seq[T], onSuccess func(T) U) Seq[U] {
	return Seq[U]{
		res: solo.Map(s.res, onSuccess),
		obs: s.obs,
	}
}

// Finally collapses a chain into a value of another type
func Finally[T, U any](s Seq[T], onSuccess func(T) U, onFailure func(error) U) U {
	return solo.Finally(s.res, onSuccess, onFailure)
}
