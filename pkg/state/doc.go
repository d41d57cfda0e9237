// Package state provides State[S, A], a deferred computation that, given a
// current state S, produces a result A and a next state S.
//
// Nothing runs until Run (or Eval/Exec) is called with an initial state, so
// composed computations can be built once and executed many times. Every
// constructor and combinator here is pure: running the same computation twice
// against the same input yields identical output pairs.
//
// Key operations:
// - Pure/Of: lift a value, leaving state untouched
// - Get/Gets/Put/Modify: read, project, replace or transform the state
// - Map/FlatMap/Then: derive and sequence computations
// - Sequence/Traverse: run an ordered batch, collecting results in order
// - Chain: run steps that each pick their computation from the current state
// - Run/Eval/Exec: execute with an initial state
//
// State carries no error channel. Callers that need failures encode them in
// the result type, for example with rop.Result and the solo and chain
// subpackages.
package state
