// Package seq sequences multi-step fallible procedures so that each step
// runs only if every prior step succeeded, and the first failure becomes
// the procedure's sole outcome with its original error intact.
//
// Two equivalent surfaces are provided:
//
//   - Seq[T]: a fluent chain (Then, ThenTry, Map, Check, Ensure, Observe,
//     Finally) where short-circuiting is explicit combinator logic.
//   - Coordinator[T]: an explicit state machine (Created -> Running ->
//     Completed) that drives a straight-line Procedure consuming step
//     results through Flow resume points (Await, Do). No conditional
//     checks are needed between steps; a failed step aborts the rest of
//     the run internally and the abort never leaks to the caller.
//
// Everything is synchronous and single-threaded. A failure is the
// cancellation of the remaining chain; there is no other cancellation
// concept, no blocking and no cross-goroutine signaling.
package seq
