// Package chain provides a fluent wrapper around solo.Step[S, T]
// for building Railway-Oriented chains over stateful computations.
//
// It composes functions like Switch, Map, Try, FailOnError, Modify and Finally
// behind a convenient Chain[S, T] type. This enables ergonomic pipelines
// without dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue/FromState: begin a chain from a step, a value or a computation
// - Then: switch to a new step via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: fail the chain when a check on state and value returns an error
// - Modify: change the state on the success track
// - RepeatWhile: repeat a step while a condition on state and value holds
// - Finally: collapse the chain into a plain computation via handlers
package chain
