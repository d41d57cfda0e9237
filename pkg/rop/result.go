package rop

import "errors"

// ErrUnset is the error of a failed Result that carries no error of its own,
// such as the zero Result or Fail(nil).
var ErrUnset = errors.New("rop: result not set")

// Result carries the outcome of one railway step: a value on success, or the
// error that stopped the track. A cancelled Result is a failure the caller
// asked for rather than one the step ran into.
//
// Results are plain values with no identity, so stateful computations that
// produce them stay repeatable. The zero Result is an unset failure.
type Result[T any] struct {
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err: err,
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:      err,
		isCancel: true,
	}
}

// FailFrom re-types a non-successful Result, keeping its error and cancel flag.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isCancel {
		return Cancel[Out](from.err)
	}
	return Fail[Out](from.err)
}

func (r Result[T]) Result() T {
	return r.result
}

// Err returns nil on success, and never nil otherwise.
func (r Result[T]) Err() error {
	if !r.isSuccess && r.err == nil {
		return ErrUnset
	}
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}
