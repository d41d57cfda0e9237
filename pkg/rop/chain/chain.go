package chain

import (
	"github.com/ib-77/stately/pkg/rop"
	"github.com/ib-77/stately/pkg/rop/solo"
	"github.com/ib-77/stately/pkg/state"
)

// Chain wraps a railway step to enable fluent chaining.
// Nothing runs until Run is called, or the State is run by the caller.
type Chain[S, T any] struct {
	step solo.Step[S, T]
}

// Start creates a new chain from a step
func Start[S, T any](step solo.Step[S, T]) *Chain[S, T] {
	return &Chain[S, T]{
		step: step,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[S, T any](value T) *Chain[S, T] {
	return &Chain[S, T]{
		step: solo.Succeed[S](value),
	}
}

// FromState creates a new chain whose value is the result of m
func FromState[S, T any](m state.State[S, T]) *Chain[S, T] {
	return &Chain[S, T]{
		step: solo.Lift(m),
	}
}

// State returns the underlying step
func (c *Chain[S, T]) State() solo.Step[S, T] {
	return c.step
}

// Run executes the chain against s
func (c *Chain[S, T]) Run(s S) (rop.Result[T], S) {
	return c.step(s)
}

// Then chains a function that returns a step
func Then[S, T, U any](c *Chain[S, T], onSuccess func(T) solo.Step[S, U]) *Chain[S, U] {
	return &Chain[S, U]{
		step: solo.Switch(c.step, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[S, T, U any](c *Chain[S, T], tryOnSuccess func(T) (U, error)) *Chain[S, U] {
	return &Chain[S, U]{
		step: solo.Try(c.step, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[S, T, U any](c *Chain[S, T], onSuccess func(T) U) *Chain[S, U] {
	return &Chain[S, U]{
		step: solo.Map(c.step, onSuccess),
	}
}

// Ensure fails the chain when check returns an error for the current state and value
func (c *Chain[S, T]) Ensure(check func(S, T) error) *Chain[S, T] {
	return &Chain[S, T]{
		step: solo.FailOnError(c.step, check),
	}
}

// Modify changes the state while the chain is on the success track
func (c *Chain[S, T]) Modify(f func(S, T) S) *Chain[S, T] {
	return &Chain[S, T]{
		step: solo.Modify(c.step, f),
	}
}

// RepeatWhile repeats onSuccess while again holds, see solo.RepeatWhile
func (c *Chain[S, T]) RepeatWhile(onSuccess func(T) solo.Step[S, T], again func(S, T) bool) *Chain[S, T] {
	return &Chain[S, T]{
		step: solo.RepeatWhile(c.step, onSuccess, again),
	}
}

// Finally collapses the chain into a plain computation using solo.Finally
func Finally[S, T, U any](c *Chain[S, T], onSuccess func(T) U, onFailure func(error) U, onCancel func(error) U) state.State[S, U] {
	return solo.Finally(c.step, onSuccess, onFailure, onCancel)
}
