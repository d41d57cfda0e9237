// Package solo contains single-step railway primitives over stateful
// computations whose result is a rop.Result[T]. They let failures travel in
// the result while the state keeps threading through unchanged.
//
// Highlights:
// - Succeed/Fail/Cancel/Lift: construct a Step
// - Validate/ValidateAll/FailOnError: move to the failure track on bad values
// - Switch: move from Result[In] to Result[Out]
// - Map/Try: transform successful values
// - DoubleMap: transform the value or the error, keeping the track
// - Join: fold result-aware steps with break-on-error or accumulation
// - Modify: change state on the success track only
// - RepeatWhile: loop a step while a condition on state and value holds
// - Finally: reduce to a concrete value via success/error/cancel handlers
//
// Once a Step has failed, no later function is called and the state stays as
// it was at the point of failure.
package solo
