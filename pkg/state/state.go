package state

// Unit is the result of computations that only transform state.
type Unit = struct{}

// State is a transition function from an input state to a result and a next state.
// The function must be referentially transparent and must not mutate its input in place.
type State[S, A any] func(s S) (A, S)

// Run executes the transition against s and returns the result and the next state.
func (m State[S, A]) Run(s S) (A, S) {
	return m(s)
}

// Eval executes the transition and returns only the result.
func (m State[S, A]) Eval(s S) A {
	a, _ := m(s)
	return a
}

// Exec executes the transition and returns only the final state.
func (m State[S, A]) Exec(s S) S {
	_, next := m(s)
	return next
}

// Pure returns a computation yielding a with the state left untouched.
func Pure[S, A any](a A) State[S, A] {
	return func(s S) (A, S) {
		return a, s
	}
}

// Of is an alias for Pure.
func Of[S, A any](a A) State[S, A] {
	return Pure[S](a)
}

// Get returns the current state as the result.
func Get[S any]() State[S, S] {
	return func(s S) (S, S) {
		return s, s
	}
}

// Gets projects the current state through f without altering it.
func Gets[S, A any](f func(S) A) State[S, A] {
	return func(s S) (A, S) {
		return f(s), s
	}
}

// Put replaces the state unconditionally.
func Put[S any](next S) State[S, Unit] {
	return func(S) (Unit, S) {
		return Unit{}, next
	}
}

// Modify applies f to the state.
func Modify[S any](f func(S) S) State[S, Unit] {
	return func(s S) (Unit, S) {
		return Unit{}, f(s)
	}
}
