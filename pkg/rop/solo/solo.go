package solo

import (
	"errors"
	"slices"

	"github.com/ib-77/stately/pkg/rop"
	"github.com/ib-77/stately/pkg/state"
)

// Step is a stateful computation whose result is on the railway.
type Step[S, T any] = state.State[S, rop.Result[T]]

func Succeed[S, T any](input T) Step[S, T] {
	return state.Pure[S](rop.Success(input))
}

func Fail[S, T any](err error) Step[S, T] {
	return state.Pure[S](rop.Fail[T](err))
}

func Cancel[S, T any](err error) Step[S, T] {
	return state.Pure[S](rop.Cancel[T](err))
}

// Lift puts the result of a plain computation on the success track.
func Lift[S, T any](m state.State[S, T]) Step[S, T] {
	return state.Map(m, rop.Success[T])
}

func Validate[S, T any](input Step[S, T],
	validate func(s S, in T) (isValid bool, errMsg string)) Step[S, T] {

	return func(s S) (rop.Result[T], S) {
		res, next := input(s)
		if res.IsFailure() {
			return res, next
		}

		if isValid, errMsg := validate(next, res.Result()); !isValid {
			return rop.Fail[T](errors.New(errMsg)), next
		}
		return res, next
	}
}

// ValidateAll runs every validator against the value and the current state.
// With breakOnError it stops at the first failing validator, otherwise the
// errors of all failing validators are joined in order.
func ValidateAll[S, T any](input Step[S, T],
	breakOnError bool, // exit on first error
	validators ...func(s S, in T) error) Step[S, T] {

	if len(validators) == 0 {
		return input
	}
	validators = slices.Clone(validators)

	return Switch(input, func(v T) Step[S, T] {
		checks := make([]func(rop.Result[T]) Step[S, T], 0, len(validators))
		for _, validate := range validators {
			checks = append(checks, func(rop.Result[T]) Step[S, T] {
				return func(s S) (rop.Result[T], S) {
					if err := validate(s, v); err != nil {
						return rop.Fail[T](err), s
					}
					return rop.Success(v), s
				}
			})
		}

		var err error
		return Join(Succeed[S](v), breakOnError,
			func(_ S, current rop.Result[T]) rop.Result[T] {
				if current.IsFailure() {
					err = rop.JoinErrors(err, current.Err())
				}
				if rop.IsNil(err) {
					return current
				}
				return rop.Fail[T](err)
			},
			checks...)
	})
}

// Join feeds the result of input to the first of inputsF, then each later
// one the result concat made of its predecessor, threading state throughout.
// With breakOnError the fold stops at the first failed concat result.
func Join[S, T any](input Step[S, T],
	breakOnError bool, // exit on first error
	concat func(s S, current rop.Result[T]) rop.Result[T],
	inputsF ...func(in rop.Result[T]) Step[S, T]) Step[S, T] {

	if len(inputsF) == 0 || concat == nil {
		return input
	}
	inputsF = slices.Clone(inputsF)

	return func(s S) (rop.Result[T], S) {
		res, next := input(s)
		res, next = inputsF[0](res)(next)
		finalResult := concat(next, res)

		if finalResult.IsFailure() && breakOnError {
			return finalResult, next
		}

		for _, in := range inputsF[1:] {
			res, next = in(finalResult)(next)
			nextRes := concat(next, res)
			if nextRes.IsFailure() && breakOnError {
				return nextRes, next
			}
			finalResult = nextRes
		}
		return finalResult, next
	}
}

// Switch moves from Result[In] to Result[Out]. onSuccess is not called when
// input failed, and the state stays as input left it.
func Switch[S, In, Out any](input Step[S, In],
	onSuccess func(r In) Step[S, Out]) Step[S, Out] {

	return func(s S) (rop.Result[Out], S) {
		res, next := input(s)
		if res.IsSuccess() {
			return onSuccess(res.Result())(next)
		}
		return rop.FailFrom[In, Out](res), next
	}
}

func Map[S, In, Out any](input Step[S, In],
	onSuccess func(r In) Out) Step[S, Out] {

	return state.Map(input, func(res rop.Result[In]) rop.Result[Out] {
		if res.IsSuccess() {
			return rop.Success(onSuccess(res.Result()))
		}
		return rop.FailFrom[In, Out](res)
	})
}

// DoubleMap maps both tracks: onSuccess transforms the value, onError and
// onCancel transform the error of a failed or cancelled input.
func DoubleMap[S, In, Out any](input Step[S, In],
	onSuccess func(r In) Out,
	onError func(err error) error,
	onCancel func(err error) error) Step[S, Out] {

	return state.Map(input, func(res rop.Result[In]) rop.Result[Out] {
		if res.IsSuccess() {
			return rop.Success(onSuccess(res.Result()))
		}
		if res.IsCancel() {
			return rop.Cancel[Out](onCancel(res.Err()))
		}
		return rop.Fail[Out](onError(res.Err()))
	})
}

func Try[S, In, Out any](input Step[S, In],
	onTryExecute func(r In) (Out, error)) Step[S, Out] {

	return state.Map(input, func(res rop.Result[In]) rop.Result[Out] {
		if res.IsFailure() {
			return rop.FailFrom[In, Out](res)
		}

		out, err := onTryExecute(res.Result())
		if err != nil {
			return rop.Fail[Out](err)
		}
		return rop.Success(out)
	})
}

func FailOnError[S, T any](input Step[S, T],
	maybeErr func(s S, in T) error) Step[S, T] {

	return func(s S) (rop.Result[T], S) {
		res, next := input(s)
		if res.IsFailure() {
			return res, next
		}
		if err := maybeErr(next, res.Result()); err != nil {
			return rop.Fail[T](err), next
		}
		return res, next
	}
}

// Modify applies f to the state only while on the success track.
func Modify[S, T any](input Step[S, T], f func(s S, in T) S) Step[S, T] {
	return func(s S) (rop.Result[T], S) {
		res, next := input(s)
		if res.IsFailure() {
			return res, next
		}
		return res, f(next, res.Result())
	}
}

// RepeatWhile runs onSuccess on the value of input, then again on each new
// value for as long as the step succeeds and again reports true for the state
// and value it produced. onSuccess runs at least once when input succeeds.
func RepeatWhile[S, T any](input Step[S, T],
	onSuccess func(r T) Step[S, T],
	again func(s S, r T) bool) Step[S, T] {

	return func(s S) (rop.Result[T], S) {
		res, next := input(s)
		for res.IsSuccess() {
			res, next = onSuccess(res.Result())(next)
			if res.IsFailure() || !again(next, res.Result()) {
				break
			}
		}
		return res, next
	}
}

func Finally[S, In, Out any](input Step[S, In],
	onSuccess func(r In) Out,
	onError func(err error) Out,
	onCancel func(err error) Out) state.State[S, Out] {

	return state.Map(input, func(res rop.Result[In]) Out {
		if res.IsSuccess() {
			return onSuccess(res.Result())
		} else if res.IsCancel() {
			return onCancel(res.Err())
		} else {
			return onError(res.Err())
		}
	})
}
