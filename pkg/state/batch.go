package state

import "slices"

// Sequence runs ms in order, each against the state left by its predecessor,
// and collects their results in the same order.
//
// It behaves as a left fold from Pure([]A{}) that appends each result, but runs
// as a loop so deep batches do not grow the stack.
func Sequence[S, A any](ms []State[S, A]) State[S, []A] {
	ms = slices.Clone(ms)
	return func(s S) ([]A, S) {
		out := make([]A, 0, len(ms))
		for _, m := range ms {
			var a A
			a, s = m(s)
			out = append(out, a)
		}
		return out, s
	}
}

// Traverse is Sequence over the computations f builds from xs.
func Traverse[S, X, A any](xs []X, f func(X) State[S, A]) State[S, []A] {
	xs = slices.Clone(xs)
	return func(s S) ([]A, S) {
		out := make([]A, 0, len(xs))
		for _, x := range xs {
			var a A
			a, s = f(x)(s)
			out = append(out, a)
		}
		return out, s
	}
}

// Chain runs ops in order. Each op receives the current state, including every
// effect of the ops before it, and returns the computation to run next.
// Only the last computation's result is kept; an empty Chain yields the zero A.
//
// Steps communicate through state only. A step never sees the result of the
// step before it.
func Chain[S, A any](ops ...func(S) State[S, A]) State[S, A] {
	ops = slices.Clone(ops)
	return func(s S) (A, S) {
		var a A
		for _, op := range ops {
			a, s = op(s)(s)
		}
		return a, s
	}
}
