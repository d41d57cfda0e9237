// Package rop defines Result[T], the success/failure/cancel value used to carry
// errors through the result of a stateful computation.
//
// State computations have no error channel of their own; a step that can fail
// returns State[S, Result[T]] instead, and the solo and chain packages compose
// such steps so that a failure stops the track while the state stays as it was
// when the failure happened.
package rop
