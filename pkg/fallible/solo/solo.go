package solo

import (
	"errors"

	"github.com/ib-77/fallible/pkg/fallible"
)

func Succeed[T any](input T) fallible.Result[T] {
	return fallible.Success(input)
}

func Fail[T any](err error) fallible.Result[T] {
	return fallible.Fail[T](err)
}

func Validate[T any](input T,
	validate func(in T) (isValid bool, errMsg string)) fallible.Result[T] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input fallible.Result[T],
	validate func(in T) (valid bool, errMsg string)) fallible.Result[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(input.Result()); isValid {
			return fallible.Success(input.Result())
		} else {
			return fallible.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	input fallible.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(in fallible.Result[T]) fallible.Result[T]) fallible.Result[T] {

	var err error
	return Join(
		input,
		breakOnError,
		func(current fallible.Result[T]) fallible.Result[T] {

			if current.IsFailure() {
				e := fallible.Errors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if fallible.IsNil(err) {
				return current
			}

			return fallible.Fail[T](err)
		},
		inputsF...,
	)
}

func Switch[In any, Out any](input fallible.Result[In],
	onSuccess func(r In) fallible.Result[Out]) fallible.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return fallible.FailFrom[In, Out](input)
}

func Map[In any, Out any](input fallible.Result[In],
	onSuccess func(r In) Out) fallible.Result[Out] {

	if input.IsSuccess() {
		return fallible.Success(onSuccess(input.Result()))
	}
	return fallible.FailFrom[In, Out](input)
}

func Tee[T any](input fallible.Result[T],
	onSuccess func(r fallible.Result[T])) fallible.Result[T] {

	if input.IsSuccess() {
		onSuccess(input)
	}

	return input
}

func TeeIf[T any](input fallible.Result[T],
	condition func(r fallible.Result[T]) bool,
	onSuccessAndCondition func(r fallible.Result[T])) fallible.Result[T] {

	if input.IsSuccess() {
		if condition(input) {
			onSuccessAndCondition(input)
		}
	}

	return input
}

func DoubleTee[T any](input fallible.Result[T],
	onSuccess func(r T),
	onError func(err error)) fallible.Result[T] {

	if input.IsSuccess() {
		onSuccess(input.Result())
	} else {
		onError(input.Err())
	}

	return input
}

func DoubleMap[In any, Out any](input fallible.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) fallible.Result[Out] {

	if input.IsSuccess() {
		return fallible.Success(onSuccess(input.Result()))
	}

	onError(input.Err())
	return fallible.FailFrom[In, Out](input)
}

func Try[In any, Out any](input fallible.Result[In],
	onTryExecute func(r In) (Out, error)) fallible.Result[Out] {

	if input.IsSuccess() {
		return fallible.Call(func() (Out, error) {
			return onTryExecute(input.Result())
		})
	}

	return fallible.FailFrom[In, Out](input)
}

func FailOnError[T any](input fallible.Result[T],
	maybeErr func(in T) error) fallible.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(input.Result())
		if err != nil {
			return fallible.Fail[T](err)
		}
	}
	return input
}

func Finally[In, Out any](input fallible.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}

func Join[T any](
	input fallible.Result[T],
	breakOnError bool, // exit on first error
	concat func(current fallible.Result[T]) fallible.Result[T],
	inputsF ...func(in fallible.Result[T]) fallible.Result[T]) fallible.Result[T] {

	if len(inputsF) == 0 || concat == nil {
		return input
	}

	finalResult := concat(inputsF[0](input))

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {

			nextRes := concat(in(finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
