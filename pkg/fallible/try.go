package fallible

// Call adapts an arbitrary fallible computation into a Result. A returned
// error becomes a failure carrying that error; a panic becomes a failure
// carrying a *PanicError with the panic value preserved as-is. Call adds
// no side effects of its own.
func Call[T any](f func() (T, error)) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Fail[T](NewPanicError(rec))
		}
	}()

	v, err := f()
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

// Call0 adapts a computation that signals failure only by panicking.
func Call0[T any](f func() T) Result[T] {
	return Call(func() (T, error) {
		return f(), nil
	})
}
