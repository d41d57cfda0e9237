package state

// Map derives a computation whose result is f applied to m's result.
// The state transition is the same as m's.
func Map[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return func(s S) (B, S) {
		a, next := m(s)
		return f(a), next
	}
}

// FlatMap runs m, then runs the computation f builds from m's result
// against the state m left behind.
func FlatMap[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) (B, S) {
		a, next := m(s)
		return f(a)(next)
	}
}

// Then runs m and then n, keeping n's result.
func Then[S, A, B any](m State[S, A], n State[S, B]) State[S, B] {
	return func(s S) (B, S) {
		_, next := m(s)
		return n(next)
	}
}

// Erase widens the result of m to any, so computations with different
// result types can share one Chain.
func Erase[S, A any](m State[S, A]) State[S, any] {
	return Map(m, func(a A) any { return a })
}
